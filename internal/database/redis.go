package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/calorie-quest/backend/config"
	"github.com/pageza/calorie-quest/backend/internal/logger"
)

// NewRedisClient connects to REDIS_URL. It returns a nil client and no error
// when Redis is not configured.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		logger.Named("redis").Info("REDIS_URL not set, quest cache and rate limiting disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Named("redis").Info("connected to Redis", zap.String("addr", opts.Addr))
	return client, nil
}
