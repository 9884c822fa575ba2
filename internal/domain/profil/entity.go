package profil

import "time"

// Profil is a job-seeker record as stored in the profils table. List fields
// (diplomes, experiences, ...) are persisted as JSONB documents.
type Profil struct {
	IDDemandeur     string
	NomComplet      string
	Wilaya          string
	CSP             string
	Diplomes        []Diplome
	Experiences     []Experience
	Competences     []CompetenceTechnique
	SoftSkills      []string
	Langues         []Langue
	Scores          Scores
	DateInscription *time.Time
}

type Diplome struct {
	Niveau         string `json:"niveau"`
	Domaine        string `json:"domaine,omitempty"`
	AnneeObtention int    `json:"annee_obtention,omitempty"`
	Etablissement  string `json:"etablissement,omitempty"`
}

type Experience struct {
	Poste      string `json:"poste"`
	Entreprise string `json:"entreprise,omitempty"`
	DureeMois  int    `json:"duree_mois"`
	DateDebut  string `json:"date_debut,omitempty"`
}

type CompetenceTechnique struct {
	Nom     string `json:"nom"`
	Etoiles int    `json:"etoiles"`
}

type Langue struct {
	Langue string `json:"langue"`
	Niveau string `json:"niveau"`
}

// Scores groups the derived fields written back by the scoring pipeline.
// Nil pointers mean the profile has never been scored.
type Scores struct {
	SavoirNorm       *float64
	SavoirFaireNorm  *float64
	SavoirEtreNorm   *float64
	ResourcesScore   *float64
	MarketScore      *float64
	FullTE           *float64
	TEClassification string
	LastScored       *time.Time
}

// FullTE returns the persisted blended score, or 0 when the profile has
// never been scored. The zero default matches the store's absent-field read.
func (p Profil) FullTE() float64 {
	if p.Scores.FullTE == nil {
		return 0
	}
	return *p.Scores.FullTE
}
