package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	"github.com/goccy/go-json"
)

// FileQuestionRepository читает банк вопросов из JSON-файла (массив вопросов)
type FileQuestionRepository struct {
	filename string
}

// NewFileQuestionRepository создает новый экземпляр FileQuestionRepository
func NewFileQuestionRepository(filename string) *FileQuestionRepository {
	return &FileQuestionRepository{filename: filename}
}

// Load читает и проверяет вопросы из файла
func (r *FileQuestionRepository) Load(_ context.Context) ([]model.Question, error) {
	data, err := os.ReadFile(r.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file %s: %w", r.filename, err)
	}

	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse questions file %s: %w", r.filename, err)
	}
	if err := Validate(questions); err != nil {
		return nil, fmt.Errorf("invalid questions file %s: %w", r.filename, err)
	}
	return questions, nil
}

// Validate проверяет, что индекс верного ответа неотрицателен и попадает в варианты ответа
func Validate(questions []model.Question) error {
	for i, q := range questions {
		if q.AnswerIndex < 0 {
			return fmt.Errorf("question %d: negative answerIndex %d", i, q.AnswerIndex)
		}
		if len(q.Options) > 0 && q.AnswerIndex >= len(q.Options) {
			return fmt.Errorf("question %d: answerIndex %d out of %d options", i, q.AnswerIndex, len(q.Options))
		}
	}
	return nil
}
