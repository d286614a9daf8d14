package middleware

import (
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/telebot.v4"
)

// Logger пишет в лог входящие обновления: чат, отправителя и текст команды
func Logger(logger *slog.Logger) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			attrs := []any{"update_id", c.Update().ID}
			if chat := c.Chat(); chat != nil {
				attrs = append(attrs, "chat_id", chat.ID)
			}
			if sender := c.Sender(); sender != nil {
				attrs = append(attrs, "username", sender.Username)
			}
			if msg := c.Message(); msg != nil {
				attrs = append(attrs, "text", msg.Text)
			}
			logger.Debug("telegram update", attrs...)

			err := next(c)
			if err != nil {
				logger.Error("telegram handler failed", append(attrs, "error", err)...)
			}
			return err
		}
	}
}

// Recover перехватывает панику обработчика и возвращает ее как ошибку
func Recover(logger *slog.Logger) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					switch x := r.(type) {
					case error:
						err = x
					case string:
						err = errors.New(x)
					default:
						err = fmt.Errorf("unknown panic: %v", x)
					}
					logger.Error("recovered from panic", "error", err)
				}
			}()
			return next(c)
		}
	}
}
