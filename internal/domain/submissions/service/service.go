package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IT-Nick/promo-quiz/internal/domain/grading"
	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

type SessionResolver interface {
	ResolveAndConsume(ctx context.Context, sessionID string) (int64, error)
}

type QuestionBank interface {
	Questions() []model.Question
}

type PromoIssuer interface {
	Issue(ctx context.Context) (string, error)
}

type ResultSaver interface {
	SaveResult(ctx context.Context, record model.ResultRecord) error
}

type MessageBuilder interface {
	ResultMessage(ctx context.Context, promoCode string) (string, error)
}

type NotificationDispatcher interface {
	Dispatch(chatID int64, text string)
}

// SubmissionService связывает сессию с чатом, проверяет ответы, выдает промокод
// и отправляет уведомление о результате
type SubmissionService struct {
	sessions   SessionResolver
	questions  QuestionBank
	promos     PromoIssuer
	results    ResultSaver
	messages   MessageBuilder
	dispatcher NotificationDispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewSubmissionService создает новый экземпляр SubmissionService
func NewSubmissionService(
	sessions SessionResolver,
	questions QuestionBank,
	promos PromoIssuer,
	results ResultSaver,
	messages MessageBuilder,
	dispatcher NotificationDispatcher,
	logger *slog.Logger,
) *SubmissionService {
	return &SubmissionService{
		sessions:   sessions,
		questions:  questions,
		promos:     promos,
		results:    results,
		messages:   messages,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Submit обрабатывает отправку ответов.
// Ошибки: model.ErrInvalidPayload до любых изменений состояния, model.ErrSessionNotFound
// для неизвестной или использованной сессии. Доставка уведомления на результат не влияет.
func (s *SubmissionService) Submit(ctx context.Context, sessionID string, answers []int) (model.ResultRecord, error) {
	if sessionID == "" || answers == nil {
		return model.ResultRecord{}, model.ErrInvalidPayload
	}

	chatID, err := s.sessions.ResolveAndConsume(ctx, sessionID)
	if err != nil {
		return model.ResultRecord{}, err
	}

	result := grading.Grade(answers, s.questions.Questions())
	record := model.ResultRecord{
		ChatID:        chatID,
		Answers:       append([]int(nil), answers...),
		SubmittedAt:   s.now(),
		GradingResult: result,
	}

	var promoErr error
	if result.AllCorrect {
		record.PromoCode, promoErr = s.promos.Issue(ctx)
	}

	if err := s.results.SaveResult(ctx, record); err != nil {
		return record, err
	}
	if promoErr != nil {
		return record, fmt.Errorf("failed to issue promo code for chat %d: %w", chatID, promoErr)
	}

	s.logger.Info("submission graded",
		"chat_id", chatID,
		"correct", result.CorrectCount,
		"total", result.Total,
		"all_correct", result.AllCorrect,
	)

	text, err := s.messages.ResultMessage(ctx, record.PromoCode)
	if err != nil {
		s.logger.Error("failed to build result message", "chat_id", chatID, "error", err)
		return record, nil
	}
	s.dispatcher.Dispatch(chatID, text)

	return record, nil
}

// IsClientError сообщает, что ошибка Submit вызвана запросом, а не сервером
func IsClientError(err error) bool {
	return errors.Is(err, model.ErrInvalidPayload) || errors.Is(err, model.ErrSessionNotFound)
}
