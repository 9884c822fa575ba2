package handler

import (
	"errors"

	"employabilite/internal/delivery/http/dto"
	"employabilite/internal/delivery/http/middleware"
	"employabilite/internal/pkg/response"
	"employabilite/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScoreHandler struct {
	uc usecase.ScoringUsecase
}

func NewScoreHandler(uc usecase.ScoringUsecase) *ScoreHandler {
	return &ScoreHandler{uc: uc}
}

func (h *ScoreHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id_demandeur/score", h.GetScore)
}

// GetScore computes the full employability breakdown on demand. With
// ?save=true the derived scores are also written back to the profile.
func (h *ScoreHandler) GetScore(c fiber.Ctx) error {
	id := c.Params("id_demandeur")
	save := c.Query("save") == "true"

	detail, err := h.uc.ScoreProfile(c.Context(), id, save)
	if err != nil {
		return mapScoringUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ScoreResponse{
		IDDemandeur:     detail.IDDemandeur,
		CSP:             detail.CSP,
		SavoirNorm:      detail.SavoirNorm,
		SavoirFaireNorm: detail.SavoirFaireNorm,
		SavoirEtreNorm:  detail.SavoirEtreNorm,
		ResourcesScore:  detail.ResourcesScore,
		TensionScore:    detail.TensionScore,
		DureeScore:      detail.DureeScore,
		MarketScore:     detail.MarketScore,
		DemandCount:     detail.DemandCount,
		OpenOffers:      detail.OpenOffers,
		AvgWaitDays:     detail.AvgWaitDays,
		FullTE:          detail.FullTE,
		Classification:  detail.Classification,
		Enregistre:      save,
	})
}

func mapScoringUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfilNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profil introuvable", nil, err)
	case errors.Is(err, usecase.ErrUnknownCategory):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Catégorie CSP inconnue", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
