package handler

import (
	"errors"

	"employabilite/internal/delivery/http/dto"
	"employabilite/internal/delivery/http/middleware"
	"employabilite/internal/pkg/response"
	"employabilite/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReferentielHandler struct {
	uc usecase.ReferentielUsecase
}

func NewReferentielHandler(uc usecase.ReferentielUsecase) *ReferentielHandler {
	return &ReferentielHandler{uc: uc}
}

func (h *ReferentielHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:type", h.GetByType)
}

func (h *ReferentielHandler) GetByType(c fiber.Ctx) error {
	refs, err := h.uc.ListByType(c.Context(), c.Params("type"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Type de référentiel inconnu", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.ReferentielResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, dto.ReferentielResponse{
			Type:    ref.Type,
			Code:    ref.Code,
			Libelle: ref.Libelle,
			Ordre:   ref.Ordre,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
