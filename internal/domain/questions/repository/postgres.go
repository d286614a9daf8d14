package repository

import (
	"context"
	"fmt"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	"github.com/jackc/pgx/v5"
)

const selectQuestions = `
SELECT id, question_text, options, answer_index
FROM quiz_questions
ORDER BY position, id`

// Querier часть интерфейса *pgxpool.Pool, нужная репозиторию
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresQuestionRepository читает банк вопросов из таблицы quiz_questions
type PostgresQuestionRepository struct {
	db Querier
}

// NewPostgresQuestionRepository создает новый экземпляр PostgresQuestionRepository
func NewPostgresQuestionRepository(db Querier) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

// Load читает вопросы в порядке position
func (r *PostgresQuestionRepository) Load(ctx context.Context) ([]model.Question, error) {
	rows, err := r.db.Query(ctx, selectQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Options, &q.AnswerIndex); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}
