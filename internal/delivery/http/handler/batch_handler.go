package handler

import (
	"time"

	"employabilite/internal/delivery/http/dto"
	"employabilite/internal/pkg/response"
	"employabilite/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type BatchHandler struct {
	uc usecase.ScoringUsecase
}

func NewBatchHandler(uc usecase.ScoringUsecase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

func (h *BatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/batch", h.RunBatch)
	r.Get("/top", h.GetTop)
}

// RunBatch scores and persists the whole population synchronously. Progress
// is streamed over the websocket channel while the request is held open.
func (h *BatchHandler) RunBatch(c fiber.Ctx) error {
	sum, err := h.uc.ScoreAll(c.Context())
	if err != nil {
		return mapScoringUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.BatchResponse{
		Total:    sum.Total,
		Scores:   sum.Scored,
		Echecs:   sum.Failed,
		DureeMs:  sum.FinishedAt.Sub(sum.StartedAt).Milliseconds(),
		DemarreA: sum.StartedAt.Format(time.RFC3339),
	})
}

func (h *BatchHandler) GetTop(c fiber.Ctx) error {
	csp := c.Query("csp")
	limit := queryInt(c, "limit", 10)

	profils, err := h.uc.TopOptimal(c.Context(), csp, limit)
	if err != nil {
		return mapScoringUsecaseError(err)
	}

	out := make([]dto.TopProfilResponse, 0, len(profils))
	for _, p := range profils {
		out = append(out, dto.TopProfilResponse{
			IDDemandeur:    p.IDDemandeur,
			NomComplet:     p.NomComplet,
			CSP:            p.CSP,
			FullTE:         p.FullTE(),
			Classification: p.Scores.TEClassification,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
