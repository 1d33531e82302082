package app

import (
	"context"
	"fmt"

	"github.com/avc/shopvely/internal/config"
	"github.com/avc/shopvely/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// initDatabase создает пул соединений с базой данных и выполняет миграции
func initDatabase(ctx context.Context, databaseURI string, logger *zap.Logger) (*pgxpool.Pool, error) {
	dbPool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully")

	return dbPool, nil
}

// initRedis создает клиент Redis для гостевых корзин.
// Недоступный Redis не мешает старту: корзины покупателей хранятся в PostgreSQL.
func initRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis is unavailable, guest carts will fail until it recovers",
			zap.String("address", cfg.RedisAddr),
			zap.Error(err),
		)
		return client
	}

	logger.Info("connected to redis", zap.String("address", cfg.RedisAddr))
	return client
}
