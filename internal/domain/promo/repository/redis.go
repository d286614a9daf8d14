package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const issuedKey = "quiz:promo:issued"

// RedisPromoRepository множество выданных промокодов в Redis (SADD атомарен)
type RedisPromoRepository struct {
	client *redis.Client
}

// NewRedisPromoRepository создает новый экземпляр RedisPromoRepository
func NewRedisPromoRepository(client *redis.Client) *RedisPromoRepository {
	return &RedisPromoRepository{client: client}
}

// Reserve регистрирует код. Возвращает false, если код уже выдавался.
func (r *RedisPromoRepository) Reserve(ctx context.Context, code string) (bool, error) {
	added, err := r.client.SAdd(ctx, issuedKey, code).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve promo code: %w", err)
	}
	return added == 1, nil
}
