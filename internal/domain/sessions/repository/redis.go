package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

// RedisSessionRepository хранит привязки сессий в Redis.
// Одноразовость обеспечивается атомарной командой GETDEL.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository создает новый экземпляр RedisSessionRepository
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// Save привязывает сессию к чату, не перезаписывая существующую
func (r *RedisSessionRepository) Save(ctx context.Context, sessionID string, chatID int64, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	ok, err := r.client.SetNX(ctx, r.key(sessionID), chatID, ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if !ok {
		return model.ErrSessionExists
	}
	return nil
}

// Take читает и удаляет привязку одной командой
func (r *RedisSessionRepository) Take(ctx context.Context, sessionID string) (int64, error) {
	raw, err := r.client.GetDel(ctx, r.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrSessionNotFound
		}
		return 0, fmt.Errorf("failed to take session: %w", err)
	}

	chatID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupted session %s: %w", sessionID, err)
	}
	return chatID, nil
}

func (r *RedisSessionRepository) key(sessionID string) string {
	return "quiz:session:" + sessionID
}
