package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/IT-Nick/promo-quiz/internal/domain/messages/repository"
	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

// codePlaceholder место промокода в тексте поздравления
const codePlaceholder = "%s"

// MessageService содержит логику для работы с сообщениями
type MessageService struct {
	messageRepo *repository.MessageRepository
}

// NewMessageService создает новый экземпляр MessageService
func NewMessageService(messageRepo *repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// GetMessageByKey возвращает сообщение по ключу
func (s *MessageService) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	message, err := s.messageRepo.GetMessageByKey(ctx, messageKey)
	if err != nil {
		return "", fmt.Errorf("failed to get message by key: %w", err)
	}
	return message, nil
}

// ResultMessage текст уведомления о результате: поздравление с кодом или благодарность за участие
func (s *MessageService) ResultMessage(ctx context.Context, promoCode string) (string, error) {
	if promoCode == "" {
		return s.GetMessageByKey(ctx, model.ConsolationKey)
	}

	congrats, err := s.GetMessageByKey(ctx, model.CongratsKey)
	if err != nil {
		return "", err
	}
	if strings.Contains(congrats, codePlaceholder) {
		return strings.Replace(congrats, codePlaceholder, promoCode, 1), nil
	}
	return congrats + "\n" + promoCode, nil
}
