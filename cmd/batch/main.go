package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employabilite/internal/app"
	"employabilite/internal/config"
	"employabilite/internal/database/migration"
	"employabilite/internal/database/seeder"
	"employabilite/internal/domain/scoring"
	"employabilite/internal/logger"
	"employabilite/internal/progress"
	"employabilite/internal/repository"
	"employabilite/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The batch runner scores the whole population and exits. Progress events
// stream to the API server over the Redis channel when a broker is up.
func main() {
	seed := flag.Bool("seed", false, "seed referentiels and demo data before scoring")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	c, err := app.NewContainer(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to init container", zap.Error(err))
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	r := migration.Runner{Dir: "migrations", Logger: zlog}
	if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	if *seed {
		if err := seeder.Run(ctx, c.DB, zlog); err != nil {
			zlog.Fatal("seeding failed", zap.Error(err))
		}
	}

	profilRepo := repository.NewPostgresProfilRepository(c.DB)
	offreRepo := repository.NewPostgresOffreRepository(c.DB)
	placementRepo := repository.NewPostgresPlacementRepository(c.DB)

	weights := scoring.Defaults()
	if err := weights.Validate(); err != nil {
		zlog.Fatal("invalid weight tables", zap.Error(err))
	}

	notifier := progress.NewPublisher(c.Redis, cfg.Redis.ProgressChannel, zlog)
	uc := usecase.NewScoringUsecase(profilRepo, offreRepo, placementRepo, weights, notifier)

	sum, err := uc.ScoreAll(ctx)
	if err != nil {
		zlog.Fatal("batch scoring aborted", zap.Error(err))
	}

	zlog.Info("batch scoring finished",
		zap.Int("total", sum.Total),
		zap.Int("scored", sum.Scored),
		zap.Int("failed", sum.Failed),
		zap.Duration("duration", sum.FinishedAt.Sub(sum.StartedAt)),
	)
}
