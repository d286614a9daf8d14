package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisResultRepository последние результаты по чатам в Redis, значение хранится в JSON
type RedisResultRepository struct {
	client *redis.Client
}

// NewRedisResultRepository создает новый экземпляр RedisResultRepository
func NewRedisResultRepository(client *redis.Client) *RedisResultRepository {
	return &RedisResultRepository{client: client}
}

// Put сохраняет результат, перезаписывая предыдущий для того же чата
func (r *RedisResultRepository) Put(ctx context.Context, record model.ResultRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := r.client.Set(ctx, r.key(record.ChatID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// Get возвращает последний результат чата
func (r *RedisResultRepository) Get(ctx context.Context, chatID int64) (model.ResultRecord, error) {
	data, err := r.client.Get(ctx, r.key(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ResultRecord{}, model.ErrResultNotFound
		}
		return model.ResultRecord{}, fmt.Errorf("failed to get result: %w", err)
	}

	var record model.ResultRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.ResultRecord{}, fmt.Errorf("failed to decode result: %w", err)
	}
	return record, nil
}

func (r *RedisResultRepository) key(chatID int64) string {
	return "quiz:result:" + strconv.FormatInt(chatID, 10)
}
