package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employabilite/internal/app"
	"employabilite/internal/config"
	"employabilite/internal/database/migration"
	"employabilite/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
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

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	r := migration.Runner{Dir: "migrations", Logger: zlog}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		migCancel()
		zlog.Fatal("migration failed", zap.Error(err))
	}
	migCancel()

	application, cleanup, err := app.BootstrapWithContainer(c)
	if err != nil {
		zlog.Fatal("failed to bootstrap app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			zlog.Warn("cleanup error", zap.Error(err))
		}
	}()

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	application.Run(runCtx)

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		zlog.Fatal("invalid HTTP port", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()
	zlog.Info("server listening", zap.String("addr", addr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	case <-sigCh:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			zlog.Warn("shutdown error", zap.Error(err))
		}
	}
}
