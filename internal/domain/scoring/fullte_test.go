package scoring

import (
	"errors"
	"testing"
)

func TestClassifyTE_Tiers(t *testing.T) {
	cases := []struct {
		te   float64
		want string
	}{
		{85, ClassOptimale},
		{70, ClassOptimale},
		{69.9, ClassMoyenne},
		{40, ClassMoyenne},
		{39.9, ClassFaible},
		{20, ClassFaible},
		{19.9, ClassNulle},
		{0, ClassNulle},
	}
	for _, c := range cases {
		if got := ClassifyTE(c.te); got != c.want {
			t.Fatalf("ClassifyTE(%v): want %q, got %q", c.te, c.want, got)
		}
	}
}

func TestCombineFullTE_BlendWeights(t *testing.T) {
	// Management blends 80/20: resources 70, market 30 → 56+6 = 62.
	res, err := CombineFullTE(CSPManagement, 70, 30, Defaults().Blend)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !almostEqual(res.FullTE, 62) {
		t.Fatalf("full_te: want 62, got %v", res.FullTE)
	}
	if res.Classification != ClassMoyenne {
		t.Fatalf("classification: want %q, got %q", ClassMoyenne, res.Classification)
	}
}

func TestCombineFullTE_UnknownCategory(t *testing.T) {
	_, err := CombineFullTE("Employés", 50, 50, Defaults().Blend)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestWeightConfig_ValidateDefaults(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("default weight tables must validate: %v", err)
	}
}

func TestWeightConfig_ValidateRejectsBadSum(t *testing.T) {
	cfg := Defaults()
	rw := cfg.Resources[CSPManagement]
	rw.Savoir += 5
	cfg.Resources[CSPManagement] = rw

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for resource weights not summing to 100")
	}
}

func TestWeightConfig_ValidateRejectsMissingCSP(t *testing.T) {
	cfg := Defaults()
	delete(cfg.Market, CSPPersonnelAide)
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for missing CSP in market weights")
	}
}
