package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/IT-Nick/promo-quiz/internal/infra/config"
)

// InitRedis подключается к Redis для общих хранилищ сессий, результатов и промокодов
func InitRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	const op = "app.InitRedis"

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: failed to ping redis: %w", op, err)
	}

	logger.Info("redis connected", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	return client, nil
}
