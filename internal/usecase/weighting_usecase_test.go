package usecase

import (
	"context"
	"errors"
	"testing"

	"employabilite/internal/domain/scoring"
)

func TestWeighting_StaticFallbackOnShortHistory(t *testing.T) {
	uc := NewWeightingUsecase(mockPlacementRepo{placed: []scoring.PlacedProfile{
		{DureeAttenteJours: 30, SavoirNorm: 80, SavoirFaireNorm: 60, SavoirEtreNorm: 100},
	}}, scoring.Defaults())

	rep, err := uc.ComputeWeights(context.Background(), scoring.CSPManagement)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rep.Source != WeightSourceStatique {
		t.Fatalf("source = %q, want statique", rep.Source)
	}
	if rep.Savoir != 45 || rep.SavoirFaire != 30 || rep.SavoirEtre != 25 {
		t.Fatalf("fallback weights = %v/%v/%v, want 45/30/25", rep.Savoir, rep.SavoirFaire, rep.SavoirEtre)
	}
	if rep.PlacementCount != 1 {
		t.Fatalf("placement count = %d, want 1", rep.PlacementCount)
	}
}

func TestWeighting_DynamicWhenCorrelated(t *testing.T) {
	// Savoir tracks the success signal perfectly, the others are flat.
	placed := []scoring.PlacedProfile{
		{DureeAttenteJours: 10, SavoirNorm: 90, SavoirFaireNorm: 50, SavoirEtreNorm: 100},
		{DureeAttenteJours: 40, SavoirNorm: 75, SavoirFaireNorm: 50, SavoirEtreNorm: 100},
		{DureeAttenteJours: 80, SavoirNorm: 55, SavoirFaireNorm: 50, SavoirEtreNorm: 100},
		{DureeAttenteJours: 120, SavoirNorm: 35, SavoirFaireNorm: 50, SavoirEtreNorm: 100},
		{DureeAttenteJours: 160, SavoirNorm: 15, SavoirFaireNorm: 50, SavoirEtreNorm: 100},
	}

	uc := NewWeightingUsecase(mockPlacementRepo{placed: placed}, scoring.Defaults())

	rep, err := uc.ComputeWeights(context.Background(), scoring.CSPManagement)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rep.Source != WeightSourceDynamique {
		t.Fatalf("source = %q, want dynamique", rep.Source)
	}
	if rep.Savoir != 100 || rep.SavoirFaire != 0 || rep.SavoirEtre != 0 {
		t.Fatalf("weights = %v/%v/%v, want 100/0/0", rep.Savoir, rep.SavoirFaire, rep.SavoirEtre)
	}
}

func TestWeighting_UnknownCSP(t *testing.T) {
	uc := NewWeightingUsecase(mockPlacementRepo{}, scoring.Defaults())

	_, err := uc.ComputeWeights(context.Background(), "Artisan")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestWeighting_AllCategories(t *testing.T) {
	uc := NewWeightingUsecase(mockPlacementRepo{}, scoring.Defaults())

	reps, err := uc.ComputeAllWeights(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(reps) != 4 {
		t.Fatalf("expected 4 reports, got %d", len(reps))
	}
	for _, rep := range reps {
		if rep.Source != WeightSourceStatique {
			t.Fatalf("empty history must fall back to statique, got %q for %s", rep.Source, rep.CSP)
		}
	}
}
