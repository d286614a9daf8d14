package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/promo-quiz/internal/app/handlers/http/health_handler"
	"github.com/IT-Nick/promo-quiz/internal/app/handlers/http/questions_handler"
	"github.com/IT-Nick/promo-quiz/internal/app/handlers/http/submit_handler"
	"github.com/IT-Nick/promo-quiz/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/promo-quiz/internal/app/middleware"
	msgRepo "github.com/IT-Nick/promo-quiz/internal/domain/messages/repository"
	msgService "github.com/IT-Nick/promo-quiz/internal/domain/messages/service"
	promoRepo "github.com/IT-Nick/promo-quiz/internal/domain/promo/repository"
	promoService "github.com/IT-Nick/promo-quiz/internal/domain/promo/service"
	questionsService "github.com/IT-Nick/promo-quiz/internal/domain/questions/service"
	resultsRepo "github.com/IT-Nick/promo-quiz/internal/domain/results/repository"
	resultsService "github.com/IT-Nick/promo-quiz/internal/domain/results/service"
	sessionsRepo "github.com/IT-Nick/promo-quiz/internal/domain/sessions/repository"
	sessionsService "github.com/IT-Nick/promo-quiz/internal/domain/sessions/service"
	submissionsService "github.com/IT-Nick/promo-quiz/internal/domain/submissions/service"
	"github.com/IT-Nick/promo-quiz/internal/infra/config"
	"github.com/IT-Nick/promo-quiz/internal/infra/notifier"
	"github.com/IT-Nick/promo-quiz/internal/infra/poller"
)

const shutdownTimeout = 10 * time.Second

type Services struct {
	messageService    *msgService.MessageService
	sessionService    *sessionsService.SessionService
	questionService   *questionsService.QuestionService
	promoService      *promoService.PromoService
	resultService     *resultsService.ResultService
	submissionService *submissionsService.SubmissionService
}

type App struct {
	config     *config.Config
	logger     *slog.Logger
	bot        *telebot.Bot
	db         *pgxpool.Pool
	redis      *redis.Client
	server     *http.Server
	dispatcher *notifier.Dispatcher

	Services
}

// NewApp подключает хранилища, создает бота и собирает сервисы
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{
		config: cfg,
		logger: logger,
	}

	if err := app.initStorage(ctx); err != nil {
		return nil, err
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramBot.Token,
		Poller: poller.NewPoller(cfg),
		OnError: func(err error, c telebot.Context) {
			logger.Error("telegram error", "error", err)
		},
	})
	if err != nil {
		_ = app.closeStorage()
		return nil, fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.initServices(ctx, notifier.NewTelegramNotifier(bot, cfg.Notify.MaxRetries, cfg.Notify.InitialInterval))
	app.bootstrapHandlersTelegram()

	return app, nil
}

// initStorage подключает Redis и Postgres, если они включены в конфигурации
func (app *App) initStorage(ctx context.Context) error {
	if app.config.Storage.Type == config.StorageRedis {
		client, err := InitRedis(ctx, app.config, app.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		app.redis = client
	}

	if app.config.Database.URL != "" {
		db, err := InitDatabase(ctx, app.config, app.logger)
		if err != nil {
			_ = app.closeStorage()
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	}
	return nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices(ctx context.Context, n notifier.Notifier) {
	// Инициализация репозиториев
	var (
		sessionRepo sessionsService.Repository
		promoStore  promoService.Repository
		resultRepo  resultsService.Repository
	)
	if app.redis != nil {
		sessionRepo = sessionsRepo.NewRedisSessionRepository(app.redis)
		promoStore = promoRepo.NewRedisPromoRepository(app.redis)
		resultRepo = resultsRepo.NewRedisResultRepository(app.redis)
	} else {
		sessionRepo = sessionsRepo.NewMemorySessionRepository()
		promoStore = promoRepo.NewMemoryPromoRepository()
		resultRepo = resultsRepo.NewMemoryResultRepository()
	}

	// Инициализация сервисов
	app.messageService = msgService.NewMessageService(msgRepo.NewMessageRepository(app.config.Messages))
	app.sessionService = sessionsService.NewSessionService(sessionRepo, app.config.Quiz.SessionTTL)
	app.promoService = promoService.NewPromoService(promoStore, app.config.Quiz.PromoPrefix, app.config.Quiz.PromoLength)
	app.resultService = resultsService.NewResultService(resultRepo)

	app.questionService = questionsService.NewQuestionService(newQuestionLoader(app.config, app.db), app.logger)
	// ошибка уже записана в лог, работаем с пустым банком
	_ = app.questionService.Load(ctx)

	app.dispatcher = notifier.NewDispatcher(n, app.config.Notify.Timeout, app.logger)
	app.submissionService = submissionsService.NewSubmissionService(
		app.sessionService,
		app.questionService,
		app.promoService,
		app.resultService,
		app.messageService,
		app.dispatcher,
		app.logger,
	)
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	app.bot.Use(middleware.Logger(app.logger), middleware.Recover(app.logger))

	start := start_handler.NewStartHandler(app.sessionService, app.messageService, app.config.Web.BaseURL).GetHandlerFunc()
	app.bot.Handle("/start", start)
	app.bot.Handle("/quiz", start)
}

// Handler собирает HTTP API викторины
func (app *App) Handler() http.Handler {
	mx := http.NewServeMux()

	mx.Handle("GET /api/questions", questions_handler.NewQuestionsHandler(app.questionService, app.config.Quiz.RedactAnswers))
	mx.Handle("POST /api/submit", submit_handler.NewSubmitHandler(app.submissionService, app.logger))
	mx.Handle("GET /healthz", health_handler.NewHealthHandler(app.questionService))

	var h http.Handler = mx
	h = middleware.RecoverHTTP(app.logger, h)
	h = middleware.CORS(app.config.Server.AllowedOrigins, h)
	h = middleware.WithLogging(app.logger, h)
	return h
}

// Run запускает бота и HTTP сервер и останавливает их при отмене ctx
func (app *App) Run(ctx context.Context) error {
	app.server = &http.Server{
		Addr:         app.config.Addr(),
		Handler:      app.Handler(),
		ReadTimeout:  app.config.Server.ReadTimeout,
		WriteTimeout: app.config.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("telegram bot started", "username", app.bot.Me.Username, "mode", app.config.TelegramBot.Mode)
		app.bot.Start()
		return nil
	})

	g.Go(func() error {
		app.logger.Info("http server started", "addr", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown останавливает бота, дожидается отправки уведомлений и закрывает хранилища
func (app *App) shutdown() error {
	app.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var result *multierror.Error

	app.bot.Stop()
	if err := app.server.Shutdown(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("http shutdown: %w", err))
	}
	if err := app.dispatcher.Close(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("pending notifications: %w", err))
	}
	if err := app.closeStorage(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (app *App) closeStorage() error {
	var result *multierror.Error
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("redis close: %w", err))
		}
	}
	if app.db != nil {
		app.db.Close()
	}
	return result.ErrorOrNil()
}
