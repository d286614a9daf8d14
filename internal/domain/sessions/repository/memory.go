package repository

import (
	"context"
	"sync"
	"time"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

const purgeInterval = time.Minute

type sessionEntry struct {
	chatID    int64
	expiresAt time.Time
}

// MemorySessionRepository хранит привязки сессий к чатам в памяти процесса
type MemorySessionRepository struct {
	mu   sync.Mutex
	data map[string]sessionEntry
	now  func() time.Time

	sizeAfterPurge int
	nextPurge      time.Time
}

// NewMemorySessionRepository создает новый экземпляр MemorySessionRepository
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		data: make(map[string]sessionEntry),
		now:  time.Now,
	}
}

// Save привязывает сессию к чату. ttl <= 0 означает бессрочную сессию.
// Попутно удаляет просроченные привязки.
func (r *MemorySessionRepository) Save(_ context.Context, sessionID string, chatID int64, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeExpired()

	if entry, ok := r.data[sessionID]; ok && !r.expired(entry) {
		return model.ErrSessionExists
	}

	entry := sessionEntry{chatID: chatID}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.data[sessionID] = entry
	return nil
}

// Take возвращает чат сессии и удаляет привязку в одной критической секции
func (r *MemorySessionRepository) Take(_ context.Context, sessionID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.data[sessionID]
	if !ok {
		return 0, model.ErrSessionNotFound
	}
	delete(r.data, sessionID)

	if r.expired(entry) {
		return 0, model.ErrSessionNotFound
	}
	return entry.chatID, nil
}

// Len количество хранимых сессий, включая просроченные
func (r *MemorySessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}

// purgeExpired вызывается под r.mu. Полный проход делается, когда карта
// выросла вдвое с прошлой очистки или прошло purgeInterval.
func (r *MemorySessionRepository) purgeExpired() {
	now := r.now()
	if len(r.data) < 2*r.sizeAfterPurge && now.Before(r.nextPurge) {
		return
	}
	for id, entry := range r.data {
		if r.expired(entry) {
			delete(r.data, id)
		}
	}
	r.sizeAfterPurge = len(r.data)
	r.nextPurge = now.Add(purgeInterval)
}

func (r *MemorySessionRepository) expired(entry sessionEntry) bool {
	return !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt)
}
