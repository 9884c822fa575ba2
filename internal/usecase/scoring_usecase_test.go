package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"employabilite/internal/domain/profil"
	"employabilite/internal/domain/scoring"
	"employabilite/internal/repository"
)

type mockProfilRepo struct {
	byID    map[string]profil.Profil
	found   []profil.Profil
	ids     []string
	demand  int64
	updates map[string]repository.ScoreUpdate
	err     error
}

func newMockProfilRepo() *mockProfilRepo {
	return &mockProfilRepo{byID: map[string]profil.Profil{}, updates: map[string]repository.ScoreUpdate{}}
}

func (m *mockProfilRepo) FindByID(_ context.Context, id string) (profil.Profil, error) {
	if m.err != nil {
		return profil.Profil{}, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return profil.Profil{}, repository.ErrProfilNotFound
	}
	return p, nil
}

// Find applies the filter the way the Postgres repository does, so tests
// exercising the CSP fallback and the TE ordering see realistic pools.
func (m *mockProfilRepo) Find(_ context.Context, f repository.ProfilFilter) ([]profil.Profil, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]profil.Profil, 0, len(m.found))
	for _, p := range m.found {
		if f.CSP != "" && p.CSP != f.CSP {
			continue
		}
		if f.MinFullTE != nil && p.FullTE() < *f.MinFullTE {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if f.OrderByTE && out[i].FullTE() != out[j].FullTE() {
			return out[i].FullTE() > out[j].FullTE()
		}
		return out[i].IDDemandeur < out[j].IDDemandeur
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *mockProfilRepo) ListIDs(context.Context) ([]string, error) { return m.ids, m.err }

func (m *mockProfilRepo) CountByCSP(context.Context, string) (int64, error) {
	return m.demand, nil
}

func (m *mockProfilRepo) UpdateScores(_ context.Context, id string, up repository.ScoreUpdate) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrProfilNotFound
	}
	m.updates[id] = up
	return nil
}

type mockOffreRepo struct {
	open int64
	err  error
}

func (m mockOffreRepo) CountOpenByCSP(context.Context, string) (int64, error) {
	return m.open, m.err
}
func (m mockOffreRepo) Upsert(context.Context, repository.Offre) error { return nil }

type mockPlacementRepo struct {
	avg    *float64
	placed []scoring.PlacedProfile
	err    error
}

func (m mockPlacementRepo) AverageWaitDays(context.Context, string) (*float64, error) {
	return m.avg, m.err
}
func (m mockPlacementRepo) ListScoredByCSP(context.Context, string) ([]scoring.PlacedProfile, error) {
	return m.placed, m.err
}

type mockProgress struct {
	calls int
	last  [3]int
}

func (m *mockProgress) BatchProgress(_ context.Context, scored, failed, total int) {
	m.calls++
	m.last = [3]int{scored, failed, total}
}

func managementProfil(id string) profil.Profil {
	return profil.Profil{
		IDDemandeur: id,
		CSP:         scoring.CSPManagement,
		Diplomes:    []profil.Diplome{{Niveau: "Diplôme Bac+5"}},
		Experiences: []profil.Experience{{Poste: "Chef de projet", DureeMois: 70}},
		Competences: []profil.CompetenceTechnique{
			{Nom: "Gestion", Etoiles: 4},
			{Nom: "Budget", Etoiles: 3},
			{Nom: "Pilotage", Etoiles: 5},
		},
		SoftSkills: []string{"Leadership"},
	}
}

func TestScoring_ScoreProfile_NotFound(t *testing.T) {
	uc := NewScoringUsecase(newMockProfilRepo(), mockOffreRepo{}, mockPlacementRepo{}, scoring.Defaults(), nil)

	_, err := uc.ScoreProfile(context.Background(), "D-404", false)
	if !errors.Is(err, ErrProfilNotFound) {
		t.Fatalf("expected ErrProfilNotFound, got %v", err)
	}
}

func TestScoring_ScoreProfile_Detail(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = managementProfil("D-001")
	profils.demand = 10

	uc := NewScoringUsecase(profils, mockOffreRepo{open: 10}, mockPlacementRepo{}, scoring.Defaults(), nil)

	detail, err := uc.ScoreProfile(context.Background(), "D-001", false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if detail.ResourcesScore != 72.4 {
		t.Fatalf("resources = %v, want 72.4", detail.ResourcesScore)
	}
	// Ratio 1 gives tension 50; no placement history gives the neutral 50.
	if detail.TensionScore != 50 || detail.DureeScore != 50 {
		t.Fatalf("tension/duree = %v/%v, want 50/50", detail.TensionScore, detail.DureeScore)
	}
	if detail.MarketScore != 50 {
		t.Fatalf("market = %v, want 50", detail.MarketScore)
	}
	// Management blends 80/20: 72.4*0.8 + 50*0.2 = 67.9.
	if detail.FullTE != 67.9 {
		t.Fatalf("full TE = %v, want 67.9", detail.FullTE)
	}
	if detail.Classification != scoring.ClassMoyenne {
		t.Fatalf("classification = %q, want %q", detail.Classification, scoring.ClassMoyenne)
	}
	if len(profils.updates) != 0 {
		t.Fatalf("save=false must not persist, got %d updates", len(profils.updates))
	}
}

func TestScoring_ScoreProfile_SavePersists(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = managementProfil("D-001")
	profils.demand = 10

	uc := NewScoringUsecase(profils, mockOffreRepo{open: 10}, mockPlacementRepo{}, scoring.Defaults(), nil)

	detail, err := uc.ScoreProfile(context.Background(), "D-001", true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	up, ok := profils.updates["D-001"]
	if !ok {
		t.Fatalf("expected a persisted score update")
	}
	if up.FullTE != detail.FullTE || up.TEClassification != detail.Classification {
		t.Fatalf("persisted %v/%q, want %v/%q", up.FullTE, up.TEClassification, detail.FullTE, detail.Classification)
	}
	if up.SavoirNorm != detail.SavoirNorm || up.MarketScore != detail.MarketScore {
		t.Fatalf("sub-scores must be written back too")
	}
}

func TestScoring_ScoreProfile_UnknownCSP(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-002"] = profil.Profil{IDDemandeur: "D-002", CSP: "Cadre supérieur"}

	uc := NewScoringUsecase(profils, mockOffreRepo{}, mockPlacementRepo{}, scoring.Defaults(), nil)

	_, err := uc.ScoreProfile(context.Background(), "D-002", false)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestScoring_ScoreAll_SkipsBrokenProfiles(t *testing.T) {
	profils := newMockProfilRepo()
	profils.byID["D-001"] = managementProfil("D-001")
	profils.byID["D-002"] = profil.Profil{IDDemandeur: "D-002", CSP: "inconnue"}
	profils.byID["D-003"] = managementProfil("D-003")
	profils.ids = []string{"D-001", "D-002", "D-003"}
	profils.demand = 3

	progress := &mockProgress{}
	uc := NewScoringUsecase(profils, mockOffreRepo{open: 1}, mockPlacementRepo{}, scoring.Defaults(), progress)

	sum, err := uc.ScoreAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Total != 3 || sum.Scored != 2 || sum.Failed != 1 {
		t.Fatalf("summary = %+v, want total 3 scored 2 failed 1", sum)
	}
	if len(profils.updates) != 2 {
		t.Fatalf("expected 2 persisted updates, got %d", len(profils.updates))
	}
	// The final notification always fires, whatever the batch size.
	if progress.calls == 0 || progress.last != [3]int{2, 1, 3} {
		t.Fatalf("progress calls=%d last=%v", progress.calls, progress.last)
	}
}

func TestScoring_ScoreAll_StopsOnCancel(t *testing.T) {
	profils := newMockProfilRepo()
	profils.ids = []string{"D-001", "D-002"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewScoringUsecase(profils, mockOffreRepo{}, mockPlacementRepo{}, scoring.Defaults(), nil)
	_, err := uc.ScoreAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestScoring_MarketDetail(t *testing.T) {
	profils := newMockProfilRepo()
	profils.demand = 20

	uc := NewScoringUsecase(profils, mockOffreRepo{open: 5}, mockPlacementRepo{}, scoring.Defaults(), nil)

	det, err := uc.MarketDetail(context.Background(), scoring.CSPPersonnelAide)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// r = 5/20 = 0.25, tension = 100*r/(1+r) = 20.
	if det.TensionScore != 20 {
		t.Fatalf("tension = %v, want 20", det.TensionScore)
	}
	if det.DureeScore != scoring.NeutralDureeScore {
		t.Fatalf("duree = %v, want neutral %v", det.DureeScore, scoring.NeutralDureeScore)
	}
	// Personnel d'aide weighs tension .3 and duree .7: 20*.3 + 50*.7 = 41.
	if det.MarketScore != 41 {
		t.Fatalf("market = %v, want 41", det.MarketScore)
	}
}

func TestScoring_TopOptimal_OrdersByTEDescending(t *testing.T) {
	profils := newMockProfilRepo()
	for _, row := range []struct {
		id string
		te float64
	}{
		{"D-001", 72}, {"D-002", 91}, {"D-003", 85}, {"D-004", 55},
	} {
		te := row.te
		profils.found = append(profils.found, profil.Profil{
			IDDemandeur: row.id,
			CSP:         scoring.CSPManagement,
			Scores:      profil.Scores{FullTE: &te},
		})
	}

	uc := NewScoringUsecase(profils, mockOffreRepo{}, mockPlacementRepo{}, scoring.Defaults(), nil)

	out, err := uc.TopOptimal(context.Background(), scoring.CSPManagement, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 profils, got %d", len(out))
	}
	// The limit must keep the best scores, not the first ids.
	if out[0].IDDemandeur != "D-002" || out[1].IDDemandeur != "D-003" {
		t.Fatalf("expected D-002 then D-003, got %s then %s", out[0].IDDemandeur, out[1].IDDemandeur)
	}
}

func TestScoring_TopOptimal_RejectsUnknownCSP(t *testing.T) {
	uc := NewScoringUsecase(newMockProfilRepo(), mockOffreRepo{}, mockPlacementRepo{}, scoring.Defaults(), nil)

	_, err := uc.TopOptimal(context.Background(), "Ouvrier qualifié", 10)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
