package usecase

import (
	"context"
	"errors"
	"sort"

	"employabilite/internal/domain/profil"
	"employabilite/internal/domain/recommend"
	"employabilite/internal/domain/scoring"
	"employabilite/internal/domain/vectorize"
	"employabilite/internal/repository"
)

var (
	ErrAlreadyOptimal    = errors.New("profil already optimal")
	ErrNoOptimalProfiles = errors.New("no optimal profiles in category")
)

const (
	// DefaultTopNeighbors is the neighborhood size when the caller does not
	// ask for one.
	DefaultTopNeighbors = 10

	// optimalPoolLimit bounds the reference pool fetched per request.
	optimalPoolLimit = 50
)

// Neighbor is one optimal profile ranked by cosine similarity to the target.
type Neighbor struct {
	IDDemandeur string
	NomComplet  string
	Similarite  float64
	FullTE      float64
}

type NeighborsResult struct {
	IDDemandeur    string
	CSP            string
	FullTE         float64
	Neighbors      []Neighbor
	PoolSize       int
	MeanSimilarite float64
}

type RecommendationResult struct {
	IDDemandeur   string
	CSP           string
	FullTE        float64
	Gaps          []recommend.Gap
	Prescriptions []string
	Voisins       []Neighbor
}

type RecommendationUsecase interface {
	FindOptimalNeighbors(ctx context.Context, idDemandeur string, topK int) (NeighborsResult, error)
	GenerateRecommendations(ctx context.Context, idDemandeur string, topK int) (RecommendationResult, error)
}

type Recommendation struct {
	profils repository.ProfilRepository
}

func NewRecommendationUsecase(profils repository.ProfilRepository) *Recommendation {
	return &Recommendation{profils: profils}
}

// FindOptimalNeighbors ranks the optimal profiles of the target's CSP by
// cosine similarity. The target itself must not be optimal already, and at
// least one optimal peer must exist. When the same-CSP pool holds fewer than
// topK profiles the pool widens to every category's optimal profiles.
func (u *Recommendation) FindOptimalNeighbors(ctx context.Context, idDemandeur string, topK int) (NeighborsResult, error) {
	if topK <= 0 {
		topK = DefaultTopNeighbors
	}
	target, peers, err := u.targetAndPool(ctx, idDemandeur, topK)
	if err != nil {
		return NeighborsResult{}, err
	}

	ranked, meanSim := rankBySimilarity(target, peers)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	return NeighborsResult{
		IDDemandeur:    target.IDDemandeur,
		CSP:            target.CSP,
		FullTE:         target.FullTE(),
		Neighbors:      ranked,
		PoolSize:       len(peers),
		MeanSimilarite: meanSim,
	}, nil
}

// GenerateRecommendations turns the gap between the target and the mean of
// its nearest optimal peers into prescriptive actions, phrased in French.
func (u *Recommendation) GenerateRecommendations(ctx context.Context, idDemandeur string, topK int) (RecommendationResult, error) {
	if topK <= 0 {
		topK = DefaultTopNeighbors
	}
	target, peers, err := u.targetAndPool(ctx, idDemandeur, topK)
	if err != nil {
		return RecommendationResult{}, err
	}

	ranked, _ := rankBySimilarity(target, peers)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	keep := make(map[string]bool, len(ranked))
	for _, n := range ranked {
		keep[n.IDDemandeur] = true
	}

	vectors := make([]vectorize.FeatureVector, 0, len(peers)+1)
	peerVecs := make([]vectorize.FeatureVector, 0, len(ranked))
	for _, p := range peers {
		if keep[p.IDDemandeur] {
			fv := vectorize.Vectorize(p)
			peerVecs = append(peerVecs, fv)
			vectors = append(vectors, fv)
		}
	}
	targetVec := vectorize.Vectorize(target)
	vectors = append(vectors, targetVec)

	enc := vectorize.NewEncoder(vectors...)
	encoded := make([][]float64, len(peerVecs))
	for i, fv := range peerVecs {
		encoded[i] = enc.Encode(fv)
	}

	gaps := recommend.ComputeGaps(vectorize.Mean(encoded), enc.Encode(targetVec), enc.Keys())

	return RecommendationResult{
		IDDemandeur:   target.IDDemandeur,
		CSP:           target.CSP,
		FullTE:        target.FullTE(),
		Gaps:          gaps,
		Prescriptions: recommend.Prescriptions(gaps),
		Voisins:       ranked,
	}, nil
}

func (u *Recommendation) targetAndPool(ctx context.Context, idDemandeur string, topK int) (profil.Profil, []profil.Profil, error) {
	if idDemandeur == "" {
		return profil.Profil{}, nil, ErrInvalidInput
	}

	target, err := u.profils.FindByID(ctx, idDemandeur)
	if err != nil {
		if errors.Is(err, repository.ErrProfilNotFound) {
			return profil.Profil{}, nil, ErrProfilNotFound
		}
		return profil.Profil{}, nil, ErrInternal
	}
	if target.FullTE() >= scoring.OptimalThreshold {
		return profil.Profil{}, nil, ErrAlreadyOptimal
	}

	pool, err := u.optimalPool(ctx, target, target.CSP)
	if err != nil {
		return profil.Profil{}, nil, ErrInternal
	}

	// Too few optimal peers in the target's own category: widen the pool to
	// the optimal profiles of every category.
	if len(pool) < topK {
		widened, err := u.optimalPool(ctx, target, "")
		if err != nil {
			return profil.Profil{}, nil, ErrInternal
		}
		if len(widened) > len(pool) {
			pool = widened
		}
	}

	if len(pool) == 0 {
		return profil.Profil{}, nil, ErrNoOptimalProfiles
	}

	return target, pool, nil
}

// optimalPool fetches the optimal profiles of one category, or of all
// categories when csp is empty, with the target itself excluded. Normally
// the optimality check already rules the target out; the guard covers stale
// stored scores.
func (u *Recommendation) optimalPool(ctx context.Context, target profil.Profil, csp string) ([]profil.Profil, error) {
	min := scoring.OptimalThreshold
	peers, err := u.profils.Find(ctx, repository.ProfilFilter{
		CSP:       csp,
		MinFullTE: &min,
		Limit:     optimalPoolLimit,
	})
	if err != nil {
		return nil, err
	}

	filtered := peers[:0]
	for _, p := range peers {
		if p.IDDemandeur != target.IDDemandeur {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// rankBySimilarity encodes the target and pool over their shared feature
// space and orders the pool by descending cosine similarity. Ties break on
// id_demandeur so the ranking is stable across runs.
func rankBySimilarity(target profil.Profil, peers []profil.Profil) ([]Neighbor, float64) {
	vectors := make([]vectorize.FeatureVector, 0, len(peers)+1)
	targetVec := vectorize.Vectorize(target)
	vectors = append(vectors, targetVec)

	peerVecs := make([]vectorize.FeatureVector, len(peers))
	for i, p := range peers {
		peerVecs[i] = vectorize.Vectorize(p)
		vectors = append(vectors, peerVecs[i])
	}

	enc := vectorize.NewEncoder(vectors...)
	targetEnc := enc.Encode(targetVec)

	out := make([]Neighbor, len(peers))
	sum := 0.0
	for i, p := range peers {
		sim := vectorize.Cosine(targetEnc, enc.Encode(peerVecs[i]))
		sum += sim
		out[i] = Neighbor{
			IDDemandeur: p.IDDemandeur,
			NomComplet:  p.NomComplet,
			Similarite:  sim,
			FullTE:      p.FullTE(),
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Similarite != out[j].Similarite {
			return out[i].Similarite > out[j].Similarite
		}
		return out[i].IDDemandeur < out[j].IDDemandeur
	})

	mean := 0.0
	if len(out) > 0 {
		mean = sum / float64(len(out))
	}
	return out, mean
}
