package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	"github.com/google/uuid"
)

// Repository хранилище привязок сессия -> чат.
// Take обязан читать и удалять привязку атомарно.
type Repository interface {
	Save(ctx context.Context, sessionID string, chatID int64, ttl time.Duration) error
	Take(ctx context.Context, sessionID string) (int64, error)
}

// SessionService выдает и погашает одноразовые сессии викторины
type SessionService struct {
	repo  Repository
	ttl   time.Duration
	newID func() string
}

// NewSessionService создает новый экземпляр SessionService
func NewSessionService(repo Repository, ttl time.Duration) *SessionService {
	return &SessionService{
		repo:  repo,
		ttl:   ttl,
		newID: func() string { return uuid.New().String() },
	}
}

// CreateSession создает сессию для чата и возвращает ее идентификатор
func (s *SessionService) CreateSession(ctx context.Context, chatID int64) (string, error) {
	sessionID := s.newID()
	if err := s.repo.Save(ctx, sessionID, chatID, s.ttl); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return sessionID, nil
}

// ResolveAndConsume возвращает чат сессии и делает сессию недействительной.
// Неизвестная, просроченная и уже использованная сессии неразличимы: model.ErrSessionNotFound.
func (s *SessionService) ResolveAndConsume(ctx context.Context, sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, model.ErrSessionNotFound
	}

	chatID, err := s.repo.Take(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return 0, model.ErrSessionNotFound
		}
		return 0, fmt.Errorf("failed to resolve session: %w", err)
	}
	return chatID, nil
}
