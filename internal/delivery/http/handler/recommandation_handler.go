package handler

import (
	"errors"
	"strconv"

	"employabilite/internal/delivery/http/dto"
	"employabilite/internal/delivery/http/middleware"
	"employabilite/internal/pkg/response"
	"employabilite/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommandationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommandationHandler(uc usecase.RecommendationUsecase) *RecommandationHandler {
	return &RecommandationHandler{uc: uc}
}

func (h *RecommandationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id_demandeur/voisins", h.GetVoisins)
	r.Get("/:id_demandeur/recommandations", h.GetRecommandations)
}

func (h *RecommandationHandler) GetVoisins(c fiber.Ctx) error {
	id := c.Params("id_demandeur")
	topK := queryInt(c, "top_k", usecase.DefaultTopNeighbors)

	res, err := h.uc.FindOptimalNeighbors(c.Context(), id, topK)
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.VoisinsResponse{
		IDDemandeur:       res.IDDemandeur,
		CSP:               res.CSP,
		FullTE:            res.FullTE,
		Voisins:           voisinsToDTO(res.Neighbors),
		TaillePool:        res.PoolSize,
		SimilariteMoyenne: res.MeanSimilarite,
	})
}

// GetRecommandations returns either a French prescription list or a terminal
// status. "Already optimal" and "no optimal peers" are ordinary outcomes for
// a conseiller, not errors, so they answer 200 with an explanatory statut.
func (h *RecommandationHandler) GetRecommandations(c fiber.Ctx) error {
	id := c.Params("id_demandeur")
	topK := queryInt(c, "top_k", usecase.DefaultTopNeighbors)

	res, err := h.uc.GenerateRecommendations(c.Context(), id, topK)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyOptimal):
			// Optimal profiles get the terminal statut and nothing to work
			// on; the no-gap message is reserved for non-optimal profiles
			// whose gaps all fall under the threshold.
			return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommandationResponse{
				IDDemandeur:   id,
				Statut:        dto.StatutDejaOptimal,
				Ecarts:        []dto.EcartResponse{},
				Prescriptions: []string{},
			})
		case errors.Is(err, usecase.ErrNoOptimalProfiles):
			return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommandationResponse{
				IDDemandeur:   id,
				Statut:        dto.StatutAucunOptimal,
				Ecarts:        []dto.EcartResponse{},
				Prescriptions: []string{},
			})
		default:
			return mapRecommendationError(err)
		}
	}

	ecarts := make([]dto.EcartResponse, 0, len(res.Gaps))
	for _, g := range res.Gaps {
		ecarts = append(ecarts, dto.EcartResponse{Caracteristique: g.Feature, Intensite: g.Strength})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommandationResponse{
		IDDemandeur:   res.IDDemandeur,
		CSP:           res.CSP,
		FullTE:        res.FullTE,
		Statut:        dto.StatutRecommandations,
		Ecarts:        ecarts,
		Prescriptions: res.Prescriptions,
		Voisins:       voisinsToDTO(res.Voisins),
	})
}

func voisinsToDTO(in []usecase.Neighbor) []dto.VoisinResponse {
	out := make([]dto.VoisinResponse, 0, len(in))
	for _, n := range in {
		out = append(out, dto.VoisinResponse{
			IDDemandeur: n.IDDemandeur,
			NomComplet:  n.NomComplet,
			Similarite:  n.Similarite,
			FullTE:      n.FullTE,
		})
	}
	return out
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfilNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profil introuvable", nil, err)
	case errors.Is(err, usecase.ErrAlreadyOptimal):
		return middleware.NewAppError(fiber.StatusConflict, "Profil déjà optimal", nil, err)
	case errors.Is(err, usecase.ErrNoOptimalProfiles):
		return middleware.NewAppError(fiber.StatusNotFound, "Aucun profil optimal dans la catégorie", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
