package repository

import (
	"context"
	"fmt"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

// DefaultMessages тексты бота по умолчанию
var DefaultMessages = map[string]string{
	model.StartPromptKey: "Привет! Готовы проверить знания и получить фрибет?\nНажмите кнопку ниже, чтобы начать викторину.",
	model.StartButtonKey: "🚀 Начать викторину",
	model.CongratsKey:    "🎉 Поздравляем! Все ответы верны.\nВаш промокод: %s",
	model.ConsolationKey: "Спасибо за участие! Вы автоматически участвуете в розыгрыше.",
}

// MessageRepository каталог текстов: значения по умолчанию, перекрытые настройками
type MessageRepository struct {
	messages map[string]string
}

// NewMessageRepository создает новый экземпляр MessageRepository
func NewMessageRepository(overrides map[string]string) *MessageRepository {
	messages := make(map[string]string, len(DefaultMessages))
	for k, v := range DefaultMessages {
		messages[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			messages[k] = v
		}
	}
	return &MessageRepository{messages: messages}
}

// GetMessageByKey возвращает текст сообщения по ключу
func (r *MessageRepository) GetMessageByKey(_ context.Context, messageKey string) (string, error) {
	text, ok := r.messages[messageKey]
	if !ok {
		return "", fmt.Errorf("message with key %s not found", messageKey)
	}
	return text, nil
}
