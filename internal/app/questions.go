package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	questionsRepo "github.com/IT-Nick/promo-quiz/internal/domain/questions/repository"
	questionsService "github.com/IT-Nick/promo-quiz/internal/domain/questions/service"
	"github.com/IT-Nick/promo-quiz/internal/infra/config"
)

// newQuestionLoader выбирает источник вопросов: таблица quiz_questions, если задан database.url, иначе JSON-файл
func newQuestionLoader(cfg *config.Config, db *pgxpool.Pool) questionsService.Loader {
	if db != nil {
		return questionsRepo.NewPostgresQuestionRepository(db)
	}
	return questionsRepo.NewFileQuestionRepository(cfg.Quiz.QuestionsPath)
}

// LoadQuestions загружает банк вопросов так же, как при старте сервиса, но ошибку не прощает
func LoadQuestions(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]model.Question, error) {
	const op = "app.LoadQuestions"

	var db *pgxpool.Pool
	if cfg.Database.URL != "" {
		var err error
		db, err = InitDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		defer db.Close()
	}

	questions, err := newQuestionLoader(cfg, db).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return questions, nil
}
