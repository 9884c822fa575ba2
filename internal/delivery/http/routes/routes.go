package routes

import (
	"employabilite/internal/config"
	"employabilite/internal/database"
	"employabilite/internal/delivery/http/handler"
	"employabilite/internal/delivery/http/middleware"
	v1 "employabilite/internal/delivery/http/routes/v1"
	"employabilite/internal/domain/scoring"
	"employabilite/internal/usecase"
	"employabilite/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Deps is everything route registration needs beyond the fiber app itself.
// Weights carries the validated weight tables; bootstrap refuses to start on
// tables whose sums do not hold.
type Deps struct {
	Config   config.Config
	DB       database.DB
	Hub      *ws.Hub
	Progress usecase.ProgressNotifier
	Weights  scoring.WeightConfig
	Logger   *zap.Logger
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(deps.Logger)
	accessMw := middleware.NewAccessLogMiddleware(deps.Logger)
	app.Use(errMw.Middleware())
	app.Use(accessMw.Middleware())

	handler.NewHealthHandler(deps.DB).RegisterRoutes(app)

	if deps.Hub != nil {
		wsHandler := ws.NewHandler(deps.Hub, deps.Logger)
		app.Get("/ws/progression", wsHandler.HandleProgression)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), deps.Config, deps.DB, deps.Weights, deps.Progress)
}
