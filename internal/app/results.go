package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/IT-Nick/promo-quiz/internal/domain/model"
	resultsRepo "github.com/IT-Nick/promo-quiz/internal/domain/results/repository"
	resultsService "github.com/IT-Nick/promo-quiz/internal/domain/results/service"
	"github.com/IT-Nick/promo-quiz/internal/infra/config"
)

// ErrResultsInMemory результаты хранятся в памяти работающего процесса и снаружи недоступны
var ErrResultsInMemory = errors.New("results are kept in process memory, set storage.type: redis to read them")

// LookupResult читает последний результат чата из общего хранилища
func LookupResult(ctx context.Context, cfg *config.Config, logger *slog.Logger, chatID int64) (model.ResultRecord, error) {
	if cfg.Storage.Type != config.StorageRedis {
		return model.ResultRecord{}, ErrResultsInMemory
	}

	client, err := InitRedis(ctx, cfg, logger)
	if err != nil {
		return model.ResultRecord{}, err
	}
	defer client.Close()

	return resultsService.NewResultService(resultsRepo.NewRedisResultRepository(client)).GetResult(ctx, chatID)
}
