package vectorize

import (
	"reflect"
	"strings"
	"testing"

	"employabilite/internal/domain/profil"
)

func sampleProfil() profil.Profil {
	return profil.Profil{
		IDDemandeur: "DEM-ABCD1234",
		CSP:         "Management",
		Diplomes: []profil.Diplome{
			{Niveau: "Diplôme Bac +5"},
			{Niveau: "Diplôme Bac +5"}, // duplicate level: idempotent
		},
		Experiences: []profil.Experience{
			{Poste: "Analyste", DureeMois: 18},
			{Poste: "Chef de projet", DureeMois: 42},
		},
		Competences: []profil.CompetenceTechnique{
			{Nom: "Power BI", Etoiles: 4},
			{Nom: "SQL", Etoiles: 0},
		},
		SoftSkills: []string{"Travail en équipe"},
		Langues: []profil.Langue{
			{Langue: "Arabe", Niveau: "Natif"},
			{Langue: "Français", Niveau: "Courant"},
			{Langue: "Anglais", Niveau: "Inconnu"},
		},
	}
}

func TestVectorize_Features(t *testing.T) {
	fv := Vectorize(sampleProfil())

	want := FeatureVector{
		"diplome_Diplôme_Bac_plus5": 1,
		"comp_Power_BI":             4,
		"comp_SQL":                  0,
		"soft_Travail_en_équipe":    1,
		"experience_months":         42,
		"lang_Arabe":                5,
		"lang_Français":             4,
		"lang_Anglais":              0,
	}
	if !reflect.DeepEqual(fv, want) {
		t.Fatalf("feature vector mismatch:\n got  %v\n want %v", fv, want)
	}
}

func TestVectorize_Deterministic(t *testing.T) {
	p := sampleProfil()
	if !reflect.DeepEqual(Vectorize(p), Vectorize(p)) {
		t.Fatalf("vectorization must be deterministic")
	}
}

func TestVectorize_EmptyProfile(t *testing.T) {
	fv := Vectorize(profil.Profil{})
	if len(fv) != 1 {
		t.Fatalf("empty profile should emit only the experience aggregate, got %v", fv)
	}
	if fv[KeyExperience] != 0 {
		t.Fatalf("experience_months for empty profile: want 0, got %v", fv[KeyExperience])
	}
}

func TestVectorize_KeysStayInKnownNamespaces(t *testing.T) {
	for k := range Vectorize(sampleProfil()) {
		known := strings.HasPrefix(k, PrefixDiplome) ||
			strings.HasPrefix(k, PrefixCompetence) ||
			strings.HasPrefix(k, PrefixSoftSkill) ||
			strings.HasPrefix(k, PrefixLangue) ||
			k == KeyExperience
		if !known {
			t.Fatalf("feature %q outside the known namespaces", k)
		}
	}
}

func TestNormalizeToken(t *testing.T) {
	if got := normalizeToken("Diplôme Bac +5"); got != "Diplôme_Bac_plus5" {
		t.Fatalf("normalizeToken: got %q", got)
	}
	if got := HumanizeToken("Diplôme_Bac_plus5"); got != "Diplôme Bac +5" {
		t.Fatalf("HumanizeToken: got %q", got)
	}
}
