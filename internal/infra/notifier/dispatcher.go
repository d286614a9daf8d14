package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Notifier доставляет текст в чат
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// Dispatcher отправляет уведомления в фоне, не задерживая HTTP-ответ.
// Ошибки доставки только пишутся в лог.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher создает новый экземпляр Dispatcher
func NewDispatcher(notifier Notifier, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
	}
}

// Dispatch ставит уведомление в отправку и сразу возвращает управление.
// После Close уведомления не отправляются.
func (d *Dispatcher) Dispatch(chatID int64, text string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("notification dropped, dispatcher is closed", "chat_id", chatID)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()

		ctx := context.Background()
		if d.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.timeout)
			defer cancel()
		}

		start := time.Now()
		if err := d.notifier.Notify(ctx, chatID, text); err != nil {
			d.logger.Error("notification dispatch failed", "chat_id", chatID, "error", err)
			return
		}
		d.logger.Debug("notification sent", "chat_id", chatID, "duration_ms", time.Since(start).Milliseconds())
	}()
}

// Wait ждет завершения отправок, начатых до вызова, или отмены контекста
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close запрещает новые отправки и ждет уже начатые
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	return d.Wait(ctx)
}
