package start_handler

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

type SessionCreator interface {
	CreateSession(ctx context.Context, chatID int64) (string, error)
}

type MessageProvider interface {
	GetMessageByKey(ctx context.Context, messageKey string) (string, error)
}

// StartHandler структура для обработки команд /start и /quiz
type StartHandler struct {
	sessions   SessionCreator
	messages   MessageProvider
	webBaseURL string
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(sessions SessionCreator, messages MessageProvider, webBaseURL string) *StartHandler {
	return &StartHandler{
		sessions:   sessions,
		messages:   messages,
		webBaseURL: strings.TrimRight(webBaseURL, "/"),
	}
}

// Prompt создает сессию для чата и собирает приглашение с кнопкой-ссылкой на викторину
func (h *StartHandler) Prompt(ctx context.Context, chatID int64) (string, *telebot.ReplyMarkup, error) {
	sessionID, err := h.sessions.CreateSession(ctx, chatID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	prompt, err := h.messages.GetMessageByKey(ctx, model.StartPromptKey)
	if err != nil {
		return "", nil, err
	}
	buttonText, err := h.messages.GetMessageByKey(ctx, model.StartButtonKey)
	if err != nil {
		return "", nil, err
	}

	markup := &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{{
			{Text: buttonText, URL: h.quizURL(sessionID)},
		}},
	}
	return prompt, markup, nil
}

// Handle метод, который будет использоваться для обработки команды /start
func (h *StartHandler) Handle(c telebot.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	prompt, markup, err := h.Prompt(context.Background(), chat.ID)
	if err != nil {
		return err
	}
	return c.Send(prompt, markup)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}

func (h *StartHandler) quizURL(sessionID string) string {
	return h.webBaseURL + "/?sessionId=" + url.QueryEscape(sessionID)
}
