package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"employabilite/internal/domain/profil"
	"employabilite/internal/domain/recommend"
	"employabilite/internal/domain/scoring"
)

func optimalProfil(id string, te float64, comps ...profil.CompetenceTechnique) profil.Profil {
	return profil.Profil{
		IDDemandeur: id,
		CSP:         scoring.CSPManagement,
		Diplomes:    []profil.Diplome{{Niveau: "Diplôme Bac+5"}},
		Experiences: []profil.Experience{{Poste: "Chef de projet", DureeMois: 60}},
		Competences: comps,
		SoftSkills:  []string{"Leadership"},
		Scores:      profil.Scores{FullTE: &te},
	}
}

func TestRecommendation_TargetNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(newMockProfilRepo())

	_, err := uc.FindOptimalNeighbors(context.Background(), "D-404", 10)
	if !errors.Is(err, ErrProfilNotFound) {
		t.Fatalf("expected ErrProfilNotFound, got %v", err)
	}
}

func TestRecommendation_AlreadyOptimal(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = optimalProfil("D-001", 85)

	uc := NewRecommendationUsecase(profils)

	_, err := uc.FindOptimalNeighbors(context.Background(), "D-001", 10)
	if !errors.Is(err, ErrAlreadyOptimal) {
		t.Fatalf("expected ErrAlreadyOptimal, got %v", err)
	}
}

func TestRecommendation_NoOptimalPeers(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = optimalProfil("D-001", 30)

	uc := NewRecommendationUsecase(profils)

	_, err := uc.FindOptimalNeighbors(context.Background(), "D-001", 10)
	if !errors.Is(err, ErrNoOptimalProfiles) {
		t.Fatalf("expected ErrNoOptimalProfiles, got %v", err)
	}
}

func TestRecommendation_WidensPoolAcrossCategories(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = optimalProfil("D-001", 30)

	// Two optimal peers in the target's own category, eight more elsewhere.
	pool := []profil.Profil{
		optimalProfil("D-100", 82, profil.CompetenceTechnique{Nom: "Gestion", Etoiles: 4}),
		optimalProfil("D-101", 78, profil.CompetenceTechnique{Nom: "Budget", Etoiles: 3}),
	}
	for i := 0; i < 8; i++ {
		p := optimalProfil(fmt.Sprintf("D-2%02d", i), 75)
		p.CSP = scoring.CSPPersonnelProfessionnel
		pool = append(pool, p)
	}
	profils.found = pool

	uc := NewRecommendationUsecase(profils)

	res, err := uc.FindOptimalNeighbors(context.Background(), "D-001", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Neighbors) != 10 {
		t.Fatalf("expected 10 neighbors from the widened pool, got %d", len(res.Neighbors))
	}
	if res.PoolSize != 10 {
		t.Fatalf("pool size = %d, want 10", res.PoolSize)
	}
	for _, n := range res.Neighbors {
		if n.Similarite < 0 || n.Similarite > 1 {
			t.Fatalf("similarity out of [0,1]: %v", n.Similarite)
		}
	}
}

func TestRecommendation_KeepsOwnCategoryWhenPoolLargeEnough(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = optimalProfil("D-001", 30)

	other := optimalProfil("D-200", 90)
	other.CSP = scoring.CSPPersonnelAide
	profils.found = []profil.Profil{
		optimalProfil("D-100", 82),
		optimalProfil("D-101", 78),
		other,
	}

	uc := NewRecommendationUsecase(profils)

	res, err := uc.FindOptimalNeighbors(context.Background(), "D-001", 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.PoolSize != 2 {
		t.Fatalf("pool size = %d, want the 2 same-category peers", res.PoolSize)
	}
	for _, n := range res.Neighbors {
		if n.IDDemandeur == "D-200" {
			t.Fatalf("pool widened although the category held enough peers")
		}
	}
}

func TestRecommendation_PoolSmallerThanTopKEverywhere(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = optimalProfil("D-001", 30)
	profils.found = []profil.Profil{
		optimalProfil("D-100", 82, profil.CompetenceTechnique{Nom: "Gestion", Etoiles: 4}),
		optimalProfil("D-101", 78, profil.CompetenceTechnique{Nom: "Budget", Etoiles: 3}),
	}

	uc := NewRecommendationUsecase(profils)

	res, err := uc.FindOptimalNeighbors(context.Background(), "D-001", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Neighbors) != 2 {
		t.Fatalf("expected the whole pool (2), got %d neighbors", len(res.Neighbors))
	}
	if res.PoolSize != 2 {
		t.Fatalf("pool size = %d, want 2", res.PoolSize)
	}
}

func TestRecommendation_ExcludesTargetFromPool(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = optimalProfil("D-001", 30)
	// Stale stored score: the target shows up in the optimal pool.
	profils.found = []profil.Profil{
		optimalProfil("D-001", 75),
		optimalProfil("D-100", 82),
	}

	uc := NewRecommendationUsecase(profils)

	res, err := uc.FindOptimalNeighbors(context.Background(), "D-001", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, n := range res.Neighbors {
		if n.IDDemandeur == "D-001" {
			t.Fatalf("target must not be its own neighbor")
		}
	}
}

func TestRecommendation_NeighborsSortedBySimilarity(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = profil.Profil{
		IDDemandeur: "D-001",
		CSP:         scoring.CSPManagement,
		Diplomes:    []profil.Diplome{{Niveau: "Diplôme Bac+5"}},
		Competences: []profil.CompetenceTechnique{{Nom: "Gestion", Etoiles: 2}},
	}
	te := 80.0
	// D-100 shares the diploma and the skill, D-101 shares nothing.
	profils.found = []profil.Profil{
		{
			IDDemandeur: "D-101",
			CSP:         scoring.CSPManagement,
			Diplomes:    []profil.Diplome{{Niveau: "Diplôme CAP"}},
			Competences: []profil.CompetenceTechnique{{Nom: "Soudure", Etoiles: 5}},
			Scores:      profil.Scores{FullTE: &te},
		},
		{
			IDDemandeur: "D-100",
			CSP:         scoring.CSPManagement,
			Diplomes:    []profil.Diplome{{Niveau: "Diplôme Bac+5"}},
			Competences: []profil.CompetenceTechnique{{Nom: "Gestion", Etoiles: 4}},
			Scores:      profil.Scores{FullTE: &te},
		},
	}

	uc := NewRecommendationUsecase(profils)

	res, err := uc.FindOptimalNeighbors(context.Background(), "D-001", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Neighbors[0].IDDemandeur != "D-100" {
		t.Fatalf("closest neighbor = %s, want D-100", res.Neighbors[0].IDDemandeur)
	}
	if res.Neighbors[0].Similarite <= res.Neighbors[1].Similarite {
		t.Fatalf("neighbors not sorted: %v then %v", res.Neighbors[0].Similarite, res.Neighbors[1].Similarite)
	}
}

func TestRecommendation_GeneratePrescriptions(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = profil.Profil{
		IDDemandeur: "D-001",
		CSP:         scoring.CSPManagement,
		Diplomes:    []profil.Diplome{{Niveau: "Diplôme Bac+3"}},
	}
	te := 80.0
	peer := profil.Profil{
		IDDemandeur: "D-100",
		CSP:         scoring.CSPManagement,
		Diplomes:    []profil.Diplome{{Niveau: "Diplôme Bac+5"}},
		Competences: []profil.CompetenceTechnique{{Nom: "Gestion", Etoiles: 5}},
		SoftSkills:  []string{"Leadership"},
		Scores:      profil.Scores{FullTE: &te},
	}
	profils.found = []profil.Profil{peer}

	uc := NewRecommendationUsecase(profils)

	res, err := uc.GenerateRecommendations(context.Background(), "D-001", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Prescriptions) == 0 {
		t.Fatalf("expected prescriptions, got none")
	}

	var sawCompetence bool
	for _, p := range res.Prescriptions {
		if strings.Contains(p, "Gestion") {
			sawCompetence = true
		}
	}
	if !sawCompetence {
		t.Fatalf("expected a prescription for the missing Gestion skill, got %v", res.Prescriptions)
	}
	if len(res.Gaps) > recommend.MaxPrescriptions {
		t.Fatalf("gaps exceed the cap: %d", len(res.Gaps))
	}
}

func TestRecommendation_GenerateNoMajorGap(t *testing.T) {
	profils := newMockProfilRepo()
	target := optimalProfil("D-001", 60)
	profils.byID["D-001"] = target

	// Identical resume: every feature matches the peer mean exactly.
	peer := optimalProfil("D-100", 80)
	profils.found = []profil.Profil{peer}

	uc := NewRecommendationUsecase(profils)

	res, err := uc.GenerateRecommendations(context.Background(), "D-001", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Prescriptions) != 1 || res.Prescriptions[0] != recommend.MessageNoMajorGap {
		t.Fatalf("expected the no-gap message, got %v", res.Prescriptions)
	}
}
