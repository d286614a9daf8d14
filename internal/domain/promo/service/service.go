package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

const (
	alphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxAttempts = 1000
)

// Repository множество уже выданных кодов
type Repository interface {
	Reserve(ctx context.Context, code string) (bool, error)
}

// PromoService выдает уникальные промокоды вида PREFIX-XXXX
type PromoService struct {
	repo     Repository
	prefix   string
	length   int
	generate func(length int) (string, error)
}

// NewPromoService создает новый экземпляр PromoService
func NewPromoService(repo Repository, prefix string, length int) *PromoService {
	return &PromoService{
		repo:     repo,
		prefix:   prefix,
		length:   length,
		generate: randomSuffix,
	}
}

// Issue генерирует код, не совпадающий ни с одним выданным ранее, и регистрирует его до возврата.
// Если за maxAttempts попыток свободный код не найден, возвращает model.ErrPromoExhausted.
func (s *PromoService) Issue(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		suffix, err := s.generate(s.length)
		if err != nil {
			return "", fmt.Errorf("failed to generate promo code: %w", err)
		}

		code := s.prefix + "-" + suffix
		reserved, err := s.repo.Reserve(ctx, code)
		if err != nil {
			return "", err
		}
		if reserved {
			return code, nil
		}
	}
	return "", model.ErrPromoExhausted
}

// randomSuffix возвращает length символов алфавита [A-Z0-9] без смещения распределения
func randomSuffix(length int) (string, error) {
	const limit = 256 - 256%len(alphabet)

	out := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
