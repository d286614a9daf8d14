package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gopkg.in/telebot.v4"
)

// Sender часть *telebot.Bot, через которую уходят сообщения
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelegramNotifier отправляет текст в чат с ограниченным числом повторов
type TelegramNotifier struct {
	sender          Sender
	maxRetries      uint64
	initialInterval time.Duration
}

// NewTelegramNotifier создает новый экземпляр TelegramNotifier
func NewTelegramNotifier(sender Sender, maxRetries uint64, initialInterval time.Duration) *TelegramNotifier {
	return &TelegramNotifier{
		sender:          sender,
		maxRetries:      maxRetries,
		initialInterval: initialInterval,
	}
}

// Notify отправляет сообщение. Повторяет с экспоненциальной задержкой, пока не кончатся
// попытки или контекст. Заблокированный бот и неизвестный чат не повторяются.
func (n *TelegramNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = n.initialInterval
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, n.maxRetries), ctx)
	return backoff.Retry(func() error {
		err := n.send(ctx, chatID, text)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		if errors.Is(err, telebot.ErrBlockedByUser) || errors.Is(err, telebot.ErrChatNotFound) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

// send не ждет Sender дольше, чем живет ctx. Сам запрос ограничен таймаутом HTTP-клиента бота.
func (n *TelegramNotifier) send(ctx context.Context, chatID int64, text string) error {
	done := make(chan error, 1)
	go func() {
		_, err := n.sender.Send(telebot.ChatID(chatID), text)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
