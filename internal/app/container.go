package app

import (
	"context"
	"time"

	"employabilite/internal/config"
	"employabilite/internal/database"
	dbpostgres "employabilite/internal/database/postgres"
	"employabilite/internal/progress"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds the process-wide resources shared by both the API server
// and the batch runner.
type Container struct {
	Config config.Config
	DB     database.DB
	Redis  *redis.Client
	Logger *zap.Logger
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  progress.NewRedisClient(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
