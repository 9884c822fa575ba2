package progress

import (
	"context"
	"fmt"
	"time"

	"employabilite/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient dials Redis from config. When Redis is unreachable it
// returns nil and the progress channel silently degrades to a no-op, the
// same way the rest of the system treats a missing broker.
func NewRedisClient(cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, progress events disabled", zap.Error(err))
		_ = client.Close()
		return nil
	}

	return client
}
