package repository

import (
	"context"
	"sync"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

// MemoryResultRepository последние результаты по чатам в памяти процесса
type MemoryResultRepository struct {
	mu   sync.RWMutex
	data map[int64]model.ResultRecord
}

// NewMemoryResultRepository создает новый экземпляр MemoryResultRepository
func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{data: make(map[int64]model.ResultRecord)}
}

// Put сохраняет результат, перезаписывая предыдущий для того же чата
func (r *MemoryResultRepository) Put(_ context.Context, record model.ResultRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.Answers = append([]int(nil), record.Answers...)
	r.data[record.ChatID] = record
	return nil
}

// Get возвращает последний результат чата
func (r *MemoryResultRepository) Get(_ context.Context, chatID int64) (model.ResultRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.data[chatID]
	if !ok {
		return model.ResultRecord{}, model.ErrResultNotFound
	}
	record.Answers = append([]int(nil), record.Answers...)
	return record, nil
}
