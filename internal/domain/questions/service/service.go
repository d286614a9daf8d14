package service

import (
	"context"
	"log/slog"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

// Loader источник банка вопросов (файл или база данных)
type Loader interface {
	Load(ctx context.Context) ([]model.Question, error)
}

// QuestionService хранит банк вопросов. После Load банк только читается.
type QuestionService struct {
	loader    Loader
	logger    *slog.Logger
	questions []model.Question
}

// NewQuestionService создает новый экземпляр QuestionService
func NewQuestionService(loader Loader, logger *slog.Logger) *QuestionService {
	return &QuestionService{loader: loader, logger: logger}
}

// NewStaticQuestionService банк из готового списка вопросов
func NewStaticQuestionService(questions []model.Question) *QuestionService {
	return &QuestionService{questions: append([]model.Question(nil), questions...)}
}

// Load загружает банк один раз при старте. Ошибка загрузки не фатальна:
// пишем в лог и продолжаем с пустым банком.
func (s *QuestionService) Load(ctx context.Context) error {
	questions, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load questions, continuing with empty bank", "error", err)
		s.questions = nil
		return err
	}

	s.questions = questions
	s.logger.Info("questions loaded", "count", len(questions))
	return nil
}

// Questions возвращает копию банка вопросов
func (s *QuestionService) Questions() []model.Question {
	out := make([]model.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Count количество вопросов в банке
func (s *QuestionService) Count() int {
	return len(s.questions)
}
