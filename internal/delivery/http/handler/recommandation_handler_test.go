package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"employabilite/internal/delivery/http/dto"
	"employabilite/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type stubRecommendationUsecase struct {
	neighbors usecase.NeighborsResult
	result    usecase.RecommendationResult
	err       error
}

func (s stubRecommendationUsecase) FindOptimalNeighbors(context.Context, string, int) (usecase.NeighborsResult, error) {
	return s.neighbors, s.err
}

func (s stubRecommendationUsecase) GenerateRecommendations(context.Context, string, int) (usecase.RecommendationResult, error) {
	return s.result, s.err
}

func recommandationApp(uc usecase.RecommendationUsecase) *fiber.App {
	app := fiber.New()
	NewRecommandationHandler(uc).RegisterRoutes(app.Group("/profils"))
	return app
}

func decodeRecommandation(t *testing.T, body *json.Decoder) dto.RecommandationResponse {
	t.Helper()
	var envelope struct {
		Data dto.RecommandationResponse `json:"data"`
	}
	if err := body.Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestGetRecommandations_AlreadyOptimalHasNoPrescriptions(t *testing.T) {
	app := recommandationApp(stubRecommendationUsecase{err: usecase.ErrAlreadyOptimal})

	req := httptest.NewRequest("GET", "/profils/D-001/recommandations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	data := decodeRecommandation(t, json.NewDecoder(resp.Body))
	if data.Statut != dto.StatutDejaOptimal {
		t.Fatalf("statut = %q, want %q", data.Statut, dto.StatutDejaOptimal)
	}
	if len(data.Prescriptions) != 0 {
		t.Fatalf("an optimal profile must get no prescriptions, got %q", data.Prescriptions)
	}
}

func TestGetRecommandations_NoOptimalPeersStatut(t *testing.T) {
	app := recommandationApp(stubRecommendationUsecase{err: usecase.ErrNoOptimalProfiles})

	req := httptest.NewRequest("GET", "/profils/D-001/recommandations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	data := decodeRecommandation(t, json.NewDecoder(resp.Body))
	if data.Statut != dto.StatutAucunOptimal {
		t.Fatalf("statut = %q, want %q", data.Statut, dto.StatutAucunOptimal)
	}
	if len(data.Prescriptions) != 0 {
		t.Fatalf("terminal statut must carry no prescriptions, got %q", data.Prescriptions)
	}
}
