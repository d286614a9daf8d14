package dto

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
)

// SubmitRequest тело POST /api/submit. Поля разбираются вручную,
// чтобы отличать отсутствующее поле от поля неверного типа.
type SubmitRequest struct {
	SessionID json.RawMessage `json:"sessionId"`
	Answers   json.RawMessage `json:"answers"`
}

// SubmitResponse успешный ответ POST /api/submit
type SubmitResponse struct {
	OK bool `json:"ok"`
}

// Parse проверяет форму запроса: sessionId непустая строка, answers массив целых чисел или null.
// null внутри массива означает, что на вопрос не ответили.
func (r SubmitRequest) Parse() (string, []int, error) {
	var sessionID string
	if len(r.SessionID) == 0 || json.Unmarshal(r.SessionID, &sessionID) != nil || sessionID == "" {
		return "", nil, model.ErrInvalidPayload
	}

	raw := bytes.TrimSpace(r.Answers)
	if len(raw) == 0 || raw[0] != '[' {
		return "", nil, model.ErrInvalidPayload
	}

	var items []*int
	if err := json.Unmarshal(raw, &items); err != nil {
		return "", nil, model.ErrInvalidPayload
	}

	answers := make([]int, len(items))
	for i, item := range items {
		if item == nil {
			answers[i] = model.Unanswered
			continue
		}
		answers[i] = *item
	}
	return sessionID, answers, nil
}
