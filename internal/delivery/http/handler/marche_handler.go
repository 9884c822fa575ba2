package handler

import (
	"errors"
	"net/url"

	"employabilite/internal/delivery/http/dto"
	"employabilite/internal/delivery/http/middleware"
	"employabilite/internal/pkg/response"
	"employabilite/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MarcheHandler struct {
	scoring   usecase.ScoringUsecase
	weighting usecase.WeightingUsecase
}

func NewMarcheHandler(scoring usecase.ScoringUsecase, weighting usecase.WeightingUsecase) *MarcheHandler {
	return &MarcheHandler{scoring: scoring, weighting: weighting}
}

func (h *MarcheHandler) RegisterRoutes(marche, ponderation fiber.Router) {
	if marche != nil {
		marche.Get("/:csp", h.GetMarche)
	}
	if ponderation != nil {
		ponderation.Get("/", h.GetAllPonderations)
		ponderation.Get("/:csp", h.GetPonderation)
	}
}

func (h *MarcheHandler) GetMarche(c fiber.Ctx) error {
	det, err := h.scoring.MarketDetail(c.Context(), cspParam(c))
	if err != nil {
		return mapScoringUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MarcheResponse{
		CSP:          det.CSP,
		TensionScore: det.TensionScore,
		DureeScore:   det.DureeScore,
		MarketScore:  det.MarketScore,
		DemandCount:  det.DemandCount,
		OpenOffers:   det.OpenOffers,
		AvgWaitDays:  det.AvgWaitDays,
	})
}

func (h *MarcheHandler) GetPonderation(c fiber.Ctx) error {
	rep, err := h.weighting.ComputeWeights(c.Context(), cspParam(c))
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownCategory) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Catégorie CSP inconnue", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, ponderationToDTO(rep))
}

func (h *MarcheHandler) GetAllPonderations(c fiber.Ctx) error {
	reps, err := h.weighting.ComputeAllWeights(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.PonderationResponse, 0, len(reps))
	for _, rep := range reps {
		out = append(out, ponderationToDTO(rep))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// cspParam decodes the CSP path segment; category names carry spaces and
// apostrophes ("Personnel d'aide").
func cspParam(c fiber.Ctx) string {
	raw := c.Params("csp")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func ponderationToDTO(rep usecase.WeightReport) dto.PonderationResponse {
	return dto.PonderationResponse{
		CSP:            rep.CSP,
		Savoir:         rep.Savoir,
		SavoirFaire:    rep.SavoirFaire,
		SavoirEtre:     rep.SavoirEtre,
		Source:         rep.Source,
		PlacementCount: rep.PlacementCount,
	}
}
