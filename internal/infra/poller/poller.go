package poller

import (
	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/promo-quiz/internal/infra/config"
)

// NewPoller создаёт Poller в зависимости от режима бота.
// В режиме webhook telebot сам поднимает HTTP-сервер на listen_addr.
func NewPoller(cfg *config.Config) telebot.Poller {
	if cfg.TelegramBot.Mode == config.ModeWebhook {
		return &telebot.Webhook{
			Listen: cfg.TelegramBot.ListenAddr,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramBot.WebhookURL,
			},
			AllowedUpdates: []string{"message"},
		}
	}
	return &telebot.LongPoller{
		Timeout:        cfg.TelegramBot.PollTimeout,
		AllowedUpdates: []string{"message"},
	}
}
