package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avc/shopvely/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	db     *pgxpool.Pool
	redis  *redis.Client
	deps   *dependencies
	server *http.Server
}

// NewApp создает новое приложение
func NewApp(ctx context.Context) (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// База данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	redisClient := initRedis(ctx, cfg, logger)

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, dbPool, redisClient, logger)
	if err != nil {
		redisClient.Close()
		dbPool.Close()
		return nil, err
	}

	// Настройка роутера
	router := setupRouter(deps.handlers, deps.jwtManager, logger)

	return &App{
		config: cfg,
		logger: logger,
		db:     dbPool,
		redis:  redisClient,
		deps:   deps,
		server: createServer(cfg.RunAddress, router),
	}, nil
}

// Run запускает HTTP сервер, воркеры и потребителя Kafka до получения SIGINT или SIGTERM
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	a.deps.workerPool.Start(gctx)
	a.logger.Info("worker pool started")

	g.Go(a.serve)
	g.Go(func() error {
		<-gctx.Done()
		return a.shutdownServer()
	})

	if a.deps.consumer != nil {
		g.Go(func() error {
			return a.deps.consumer.Run(gctx)
		})
	}

	err := g.Wait()

	a.deps.workerPool.Wait()
	a.logger.Info("worker pool stopped")

	a.close()

	return err
}

// close освобождает внешние ресурсы после остановки всех горутин
func (a *App) close() {
	for _, closer := range a.deps.closers {
		if err := closer(); err != nil {
			a.logger.Warn("failed to close dependency", zap.Error(err))
		}
	}

	if err := a.redis.Close(); err != nil {
		a.logger.Warn("failed to close redis client", zap.Error(err))
	}

	a.db.Close()
	a.logger.Info("database connection closed")

	a.logger.Info("server stopped gracefully")
	_ = a.logger.Sync()
}
