package v1

import (
	"employabilite/internal/config"
	"employabilite/internal/database"
	"employabilite/internal/delivery/http/handler"
	"employabilite/internal/delivery/http/middleware"
	"employabilite/internal/domain/scoring"
	"employabilite/internal/pkg/jwt"
	"employabilite/internal/repository"
	"employabilite/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 API: repositories, usecases, handlers. Auth routes
// stay open; everything else sits behind the bearer middleware. The weight
// tables arrive already validated from bootstrap.
func Register(r fiber.Router, cfg config.Config, db database.DB, weights scoring.WeightConfig, progress usecase.ProgressNotifier) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	profilRepo := repository.NewPostgresProfilRepository(db)
	offreRepo := repository.NewPostgresOffreRepository(db)
	placementRepo := repository.NewPostgresPlacementRepository(db)
	referentielRepo := repository.NewPostgresReferentielRepository(db)
	conseillerRepo := repository.NewPostgresConseillerRepository(db)

	authUC := usecase.NewAuthUsecase(conseillerRepo, jwtSvc)
	scoringUC := usecase.NewScoringUsecase(profilRepo, offreRepo, placementRepo, weights, progress)
	recommendationUC := usecase.NewRecommendationUsecase(profilRepo)
	weightingUC := usecase.NewWeightingUsecase(placementRepo, weights)
	referentielUC := usecase.NewReferentielUsecase(referentielRepo)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	profils := protected.Group("/profils")
	handler.NewScoreHandler(scoringUC).RegisterRoutes(profils)
	handler.NewRecommandationHandler(recommendationUC).RegisterRoutes(profils)

	handler.NewBatchHandler(scoringUC).RegisterRoutes(protected.Group("/scoring"))

	marcheHandler := handler.NewMarcheHandler(scoringUC, weightingUC)
	marcheHandler.RegisterRoutes(protected.Group("/marche"), protected.Group("/ponderation"))

	handler.NewReferentielHandler(referentielUC).RegisterRoutes(protected.Group("/referentiels"))
}
