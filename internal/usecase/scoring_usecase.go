package usecase

import (
	"context"
	"errors"
	"time"

	"employabilite/internal/domain/profil"
	"employabilite/internal/domain/scoring"
	"employabilite/internal/repository"
)

var (
	ErrProfilNotFound  = errors.New("profil not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrUnknownCategory = errors.New("unknown CSP category")
)

// progressEvery is the batch interval between two progress notifications.
const progressEvery = 50

// ScoreDetail is the full breakdown of one employability computation,
// returned as-is by the scoring endpoint.
type ScoreDetail struct {
	IDDemandeur string
	CSP         string

	SavoirNorm      float64
	SavoirFaireNorm float64
	SavoirEtreNorm  float64
	ResourcesScore  float64

	TensionScore float64
	DureeScore   float64
	MarketScore  float64
	DemandCount  int64
	OpenOffers   int64
	AvgWaitDays  *float64

	FullTE         float64
	Classification string
	ScoredAt       time.Time
}

// BatchSummary tallies a full-population scoring run.
type BatchSummary struct {
	Total      int
	Scored     int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// ProgressNotifier receives periodic advancement events during a batch run.
// Implementations must tolerate being called from a long-lived loop.
type ProgressNotifier interface {
	BatchProgress(ctx context.Context, scored, failed, total int)
}

// MarcheDetail is the market-side indicator set for one CSP, independent of
// any particular profile.
type MarcheDetail struct {
	CSP          string
	TensionScore float64
	DureeScore   float64
	MarketScore  float64
	DemandCount  int64
	OpenOffers   int64
	AvgWaitDays  *float64
}

type ScoringUsecase interface {
	ScoreProfile(ctx context.Context, idDemandeur string, save bool) (ScoreDetail, error)
	ScoreAll(ctx context.Context) (BatchSummary, error)
	TopOptimal(ctx context.Context, csp string, limit int) ([]profil.Profil, error)
	MarketDetail(ctx context.Context, csp string) (MarcheDetail, error)
}

type Scoring struct {
	profils    repository.ProfilRepository
	offres     repository.OffreRepository
	placements repository.PlacementRepository
	weights    scoring.WeightConfig
	progress   ProgressNotifier

	now func() time.Time
}

func NewScoringUsecase(
	profils repository.ProfilRepository,
	offres repository.OffreRepository,
	placements repository.PlacementRepository,
	weights scoring.WeightConfig,
	progress ProgressNotifier,
) *Scoring {
	return &Scoring{
		profils:    profils,
		offres:     offres,
		placements: placements,
		weights:    weights,
		progress:   progress,
		now:        time.Now,
	}
}

func (u *Scoring) ScoreProfile(ctx context.Context, idDemandeur string, save bool) (ScoreDetail, error) {
	if idDemandeur == "" {
		return ScoreDetail{}, ErrInvalidInput
	}

	p, err := u.profils.FindByID(ctx, idDemandeur)
	if err != nil {
		if errors.Is(err, repository.ErrProfilNotFound) {
			return ScoreDetail{}, ErrProfilNotFound
		}
		return ScoreDetail{}, ErrInternal
	}

	detail, err := u.scoreOne(ctx, p)
	if err != nil {
		return ScoreDetail{}, err
	}

	if save {
		up := repository.ScoreUpdate{
			SavoirNorm:       detail.SavoirNorm,
			SavoirFaireNorm:  detail.SavoirFaireNorm,
			SavoirEtreNorm:   detail.SavoirEtreNorm,
			ResourcesScore:   detail.ResourcesScore,
			MarketScore:      detail.MarketScore,
			FullTE:           detail.FullTE,
			TEClassification: detail.Classification,
			LastScored:       detail.ScoredAt,
		}
		if err := u.profils.UpdateScores(ctx, idDemandeur, up); err != nil {
			return ScoreDetail{}, ErrInternal
		}
	}

	return detail, nil
}

// ScoreAll walks the whole population sequentially, persisting every
// successful score. A profile that fails to score is counted and skipped;
// one broken record never aborts the run. Only a context cancellation stops
// the loop early.
func (u *Scoring) ScoreAll(ctx context.Context) (BatchSummary, error) {
	ids, err := u.profils.ListIDs(ctx)
	if err != nil {
		return BatchSummary{}, ErrInternal
	}

	sum := BatchSummary{Total: len(ids), StartedAt: u.now().UTC()}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		if _, err := u.ScoreProfile(ctx, id, true); err != nil {
			sum.Failed++
		} else {
			sum.Scored++
		}

		if u.progress != nil && (sum.Scored+sum.Failed)%progressEvery == 0 {
			u.progress.BatchProgress(ctx, sum.Scored, sum.Failed, sum.Total)
		}
	}

	sum.FinishedAt = u.now().UTC()
	if u.progress != nil {
		u.progress.BatchProgress(ctx, sum.Scored, sum.Failed, sum.Total)
	}
	return sum, nil
}

func (u *Scoring) TopOptimal(ctx context.Context, csp string, limit int) ([]profil.Profil, error) {
	if csp != "" && !scoring.ValidCSP(csp) {
		return nil, ErrUnknownCategory
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	min := scoring.OptimalThreshold
	out, err := u.profils.Find(ctx, repository.ProfilFilter{CSP: csp, MinFullTE: &min, OrderByTE: true, Limit: limit})
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Scoring) MarketDetail(ctx context.Context, csp string) (MarcheDetail, error) {
	if !scoring.ValidCSP(csp) {
		return MarcheDetail{}, ErrUnknownCategory
	}

	demand, err := u.profils.CountByCSP(ctx, csp)
	if err != nil {
		return MarcheDetail{}, ErrInternal
	}
	open, err := u.offres.CountOpenByCSP(ctx, csp)
	if err != nil {
		return MarcheDetail{}, ErrInternal
	}
	avgWait, err := u.placements.AverageWaitDays(ctx, csp)
	if err != nil {
		return MarcheDetail{}, ErrInternal
	}

	mkt, err := scoring.ComputeMarket(csp, scoring.MarketInputs{
		DemandCount: demand,
		OpenOffers:  open,
		AvgWaitDays: avgWait,
	}, u.weights.Market)
	if err != nil {
		return MarcheDetail{}, ErrInternal
	}

	return MarcheDetail{
		CSP:          csp,
		TensionScore: mkt.TensionNorm,
		DureeScore:   mkt.DureeNorm,
		MarketScore:  mkt.MarketScore,
		DemandCount:  demand,
		OpenOffers:   open,
		AvgWaitDays:  avgWait,
	}, nil
}

func (u *Scoring) scoreOne(ctx context.Context, p profil.Profil) (ScoreDetail, error) {
	res, err := scoring.ComputeResources(p, u.weights.Resources)
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownCategory) {
			return ScoreDetail{}, ErrUnknownCategory
		}
		return ScoreDetail{}, ErrInternal
	}

	demand, err := u.profils.CountByCSP(ctx, p.CSP)
	if err != nil {
		return ScoreDetail{}, ErrInternal
	}
	open, err := u.offres.CountOpenByCSP(ctx, p.CSP)
	if err != nil {
		return ScoreDetail{}, ErrInternal
	}
	avgWait, err := u.placements.AverageWaitDays(ctx, p.CSP)
	if err != nil {
		return ScoreDetail{}, ErrInternal
	}

	mkt, err := scoring.ComputeMarket(p.CSP, scoring.MarketInputs{
		DemandCount: demand,
		OpenOffers:  open,
		AvgWaitDays: avgWait,
	}, u.weights.Market)
	if err != nil {
		return ScoreDetail{}, ErrInternal
	}

	full, err := scoring.CombineFullTE(p.CSP, res.ResourcesScore, mkt.MarketScore, u.weights.Blend)
	if err != nil {
		return ScoreDetail{}, ErrInternal
	}

	return ScoreDetail{
		IDDemandeur:     p.IDDemandeur,
		CSP:             p.CSP,
		SavoirNorm:      res.SavoirNorm,
		SavoirFaireNorm: res.SavoirFaireNorm,
		SavoirEtreNorm:  res.SavoirEtreNorm,
		ResourcesScore:  res.ResourcesScore,
		TensionScore:    mkt.TensionNorm,
		DureeScore:      mkt.DureeNorm,
		MarketScore:     mkt.MarketScore,
		DemandCount:     demand,
		OpenOffers:      open,
		AvgWaitDays:     avgWait,
		FullTE:          full.FullTE,
		Classification:  full.Classification,
		ScoredAt:        u.now().UTC(),
	}, nil
}
