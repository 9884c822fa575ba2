package main

import (
	"context"
	"flag"
	"log"
	"time"

	"employabilite/internal/app"
	"employabilite/internal/collector"
	"employabilite/internal/config"
	"employabilite/internal/database/migration"
	"employabilite/internal/logger"
	"employabilite/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	boardURL := flag.String("board_url", "", "override the configured board URL")
	pages := flag.Int("pages", 0, "override the configured page count")
	headless := flag.Bool("headless", false, "force headless rendering")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *boardURL != "" {
		cfg.Collector.BoardURL = *boardURL
	}
	if *pages > 0 {
		cfg.Collector.MaxPages = *pages
	}
	if *headless {
		cfg.Collector.Headless = true
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

	r := migration.Runner{Dir: "migrations", Logger: zlog}
	if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	col := collector.New(
		repository.NewPostgresOffreRepository(c.DB),
		repository.NewPostgresCollecteRunRepository(c.DB),
		cfg.Collector,
		zlog,
	)

	stored, err := col.Run(ctx)
	if err != nil {
		zlog.Fatal("collecte failed", zap.Int("offres", stored), zap.Error(err))
	}
	zlog.Info("collecte finished", zap.Int("offres", stored))
}
