package app

import (
	"context"
	"fmt"
	"strings"

	"employabilite/internal/config"
	"employabilite/internal/delivery/http/routes"
	"employabilite/internal/domain/scoring"
	"employabilite/internal/progress"
	"employabilite/internal/usecase"
	"employabilite/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub

	container  *Container
	subscriber *progress.Subscriber
}

// Bootstrap assembles the API server: database, optional Redis bridge,
// websocket hub and the full route table. The returned cleanup releases the
// container's resources.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	return bootstrapWith(cfg, nil)
}

func BootstrapWithContainer(c *Container) (*App, func() error, error) {
	return bootstrapWith(c.Config, c)
}

func bootstrapWith(cfg config.Config, c *Container) (*App, func() error, error) {
	if c == nil {
		var err error
		c, err = NewContainer(cfg, nil)
		if err != nil {
			return nil, nil, err
		}
	}

	weights := scoring.Defaults()
	if err := weights.Validate(); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("weight tables: %w", err)
	}

	hub := ws.NewHub(c.Logger)

	// Batch progress reaches the hub through Redis when a broker is there,
	// directly otherwise.
	var notifier usecase.ProgressNotifier
	var subscriber *progress.Subscriber
	if c.Redis != nil {
		notifier = progress.NewPublisher(c.Redis, cfg.Redis.ProgressChannel, c.Logger)
		subscriber = progress.NewSubscriber(c.Redis, cfg.Redis.ProgressChannel, hub, c.Logger)
	} else {
		notifier = progress.NewHubNotifier(hub)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	routes.Register(f, routes.Deps{
		Config:   cfg,
		DB:       c.DB,
		Hub:      hub,
		Progress: notifier,
		Weights:  weights,
		Logger:   c.Logger,
	})

	app := &App{Fiber: f, Hub: hub, container: c, subscriber: subscriber}
	return app, c.Close, nil
}

// Run starts the hub and, when Redis is wired, the progress subscriber.
func (a *App) Run(ctx context.Context) {
	go a.Hub.Run()
	if a.subscriber != nil {
		go func() { _ = a.subscriber.Run(ctx) }()
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
