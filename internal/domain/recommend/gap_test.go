package recommend

import (
	"reflect"
	"strings"
	"testing"
)

func TestComputeGaps_FiltersAndSorts(t *testing.T) {
	keys := []string{"comp_Python", "comp_SQL", "experience_months", "soft_Rigueur"}
	peerMean := []float64{4, 2.5, 40, 0.9}
	target := []float64{1, 2, 10, 0}

	gaps := ComputeGaps(peerMean, target, keys)

	// comp_SQL gap 0.5 and soft_Rigueur gap 0.9 fall under the threshold.
	want := []Gap{
		{Feature: "experience_months", Strength: 30},
		{Feature: "comp_Python", Strength: 3},
	}
	if !reflect.DeepEqual(gaps, want) {
		t.Fatalf("gaps:\n got  %+v\n want %+v", gaps, want)
	}
}

func TestComputeGaps_CapsAtMaxPrescriptions(t *testing.T) {
	keys := []string{"comp_A", "comp_B", "comp_C", "comp_D", "comp_E", "comp_F", "comp_G"}
	peerMean := []float64{9, 8, 7, 6, 5, 4, 3}
	target := make([]float64, len(keys))

	gaps := ComputeGaps(peerMean, target, keys)
	if len(gaps) != MaxPrescriptions {
		t.Fatalf("expected %d gaps, got %d", MaxPrescriptions, len(gaps))
	}
	if gaps[0].Feature != "comp_A" || gaps[len(gaps)-1].Feature != "comp_E" {
		t.Fatalf("expected strongest %d gaps, got %+v", MaxPrescriptions, gaps)
	}
}

func TestComputeGaps_DeterministicTieBreak(t *testing.T) {
	keys := []string{"comp_Z", "comp_A"}
	gaps := ComputeGaps([]float64{3, 3}, []float64{0, 0}, keys)
	if gaps[0].Feature != "comp_A" {
		t.Fatalf("equal gaps must order by key: got %+v", gaps)
	}
}

func TestPrescriptions_FrenchTemplates(t *testing.T) {
	gaps := []Gap{
		{Feature: "diplome_Diplôme_Bac_plus5", Strength: 1},
		{Feature: "comp_Power_BI", Strength: 3},
		{Feature: "soft_Travail_en_équipe", Strength: 1},
		{Feature: "experience_months", Strength: 20},
		{Feature: "lang_Anglais", Strength: 2},
	}

	got := Prescriptions(gaps)
	want := []string{
		"Obtenir un diplôme Diplôme Bac +5",
		"Améliorer la compétence Power BI (niveau actuel faible)",
		"Développer la compétence comportementale Travail en équipe",
		"Gagner plus d'expérience professionnelle",
		"Améliorer le niveau en Anglais",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("prescriptions:\n got  %q\n want %q", got, want)
	}
}

func TestPrescriptions_NeverEmpty(t *testing.T) {
	got := Prescriptions(nil)
	if len(got) != 1 || got[0] != MessageNoMajorGap {
		t.Fatalf("no gaps must yield the fallback message, got %q", got)
	}
}

func TestPrescriptions_SkipsUnknownNamespaces(t *testing.T) {
	got := Prescriptions([]Gap{{Feature: "salaire_moyen", Strength: 5}})
	if len(got) != 1 || got[0] != MessageNoMajorGap {
		t.Fatalf("unknown namespace must not fabricate a prescription, got %q", got)
	}
	for _, msg := range got {
		if strings.Contains(msg, "salaire") {
			t.Fatalf("message leaked an unknown feature: %q", msg)
		}
	}
}
