package service

import (
	"context"
	"fmt"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

// Repository хранилище последних результатов по чатам
type Repository interface {
	Put(ctx context.Context, record model.ResultRecord) error
	Get(ctx context.Context, chatID int64) (model.ResultRecord, error)
}

// ResultService содержит логику работы с результатами викторины
type ResultService struct {
	repo Repository
}

// NewResultService создает новый экземпляр ResultService
func NewResultService(repo Repository) *ResultService {
	return &ResultService{repo: repo}
}

// SaveResult сохраняет результат, перезаписывая предыдущий для того же чата
func (s *ResultService) SaveResult(ctx context.Context, record model.ResultRecord) error {
	if err := s.repo.Put(ctx, record); err != nil {
		return fmt.Errorf("failed to save result for chat %d: %w", record.ChatID, err)
	}
	return nil
}

// GetResult возвращает последний результат чата или model.ErrResultNotFound
func (s *ResultService) GetResult(ctx context.Context, chatID int64) (model.ResultRecord, error) {
	record, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return model.ResultRecord{}, fmt.Errorf("failed to get result for chat %d: %w", chatID, err)
	}
	return record, nil
}
