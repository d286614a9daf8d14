package repository

import (
	"context"
	"sync"
)

// MemoryPromoRepository множество выданных промокодов в памяти процесса
type MemoryPromoRepository struct {
	mu     sync.Mutex
	issued map[string]struct{}
}

// NewMemoryPromoRepository создает новый экземпляр MemoryPromoRepository
func NewMemoryPromoRepository() *MemoryPromoRepository {
	return &MemoryPromoRepository{issued: make(map[string]struct{})}
}

// Reserve регистрирует код. Возвращает false, если код уже выдавался.
func (r *MemoryPromoRepository) Reserve(_ context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.issued[code]; ok {
		return false, nil
	}
	r.issued[code] = struct{}{}
	return true, nil
}

// Count количество выданных кодов
func (r *MemoryPromoRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.issued)
}
