package usecase

import (
	"context"
	"errors"

	"employabilite/internal/domain/scoring"
	"employabilite/internal/repository"
)

const (
	WeightSourceDynamique = "dynamique"
	WeightSourceStatique  = "statique"
)

// WeightReport is the recalibrated resource split for one CSP, with enough
// context for a conseiller to judge whether the history backs it.
type WeightReport struct {
	CSP            string
	Savoir         float64
	SavoirFaire    float64
	SavoirEtre     float64
	Source         string
	PlacementCount int
}

type WeightingUsecase interface {
	ComputeWeights(ctx context.Context, csp string) (WeightReport, error)
	ComputeAllWeights(ctx context.Context) ([]WeightReport, error)
}

type Weighting struct {
	placements repository.PlacementRepository
	static     scoring.WeightConfig
}

func NewWeightingUsecase(placements repository.PlacementRepository, static scoring.WeightConfig) *Weighting {
	return &Weighting{placements: placements, static: static}
}

func (u *Weighting) ComputeWeights(ctx context.Context, csp string) (WeightReport, error) {
	fallback, ok := u.static.Resources[csp]
	if !ok || !scoring.ValidCSP(csp) {
		return WeightReport{}, ErrUnknownCategory
	}

	placed, err := u.placements.ListScoredByCSP(ctx, csp)
	if err != nil {
		return WeightReport{}, ErrInternal
	}

	w, err := scoring.DynamicResourceWeights(placed, fallback)
	source := WeightSourceDynamique
	if err != nil {
		if !errors.Is(err, scoring.ErrInsufficientData) {
			return WeightReport{}, ErrInternal
		}
		source = WeightSourceStatique
	}

	return WeightReport{
		CSP:            csp,
		Savoir:         w.Savoir,
		SavoirFaire:    w.SavoirFaire,
		SavoirEtre:     w.SavoirEtre,
		Source:         source,
		PlacementCount: len(placed),
	}, nil
}

func (u *Weighting) ComputeAllWeights(ctx context.Context) ([]WeightReport, error) {
	out := make([]WeightReport, 0, len(scoring.Categories()))
	for _, csp := range scoring.Categories() {
		rep, err := u.ComputeWeights(ctx, csp)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, nil
}
