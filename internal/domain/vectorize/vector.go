// Package vectorize turns heterogeneous profile records into sparse numeric
// feature vectors and aligns batches of them into one shared feature space
// for similarity comparison.
package vectorize

import (
	"strings"

	"employabilite/internal/domain/profil"
)

// Feature key namespaces. Every feature a profile can emit starts with one of
// these prefixes (or is exactly KeyExperience).
const (
	PrefixDiplome    = "diplome_"
	PrefixCompetence = "comp_"
	PrefixSoftSkill  = "soft_"
	PrefixLangue     = "lang_"
	KeyExperience    = "experience_months"
)

// Ordinal scale for declared language levels. Unrecognised levels map to 0.
var langueLevels = map[string]float64{
	"Natif":         5,
	"Courant":       4,
	"Intermédiaire": 3,
	"Élémentaire":   2,
	"Aucun":         0,
}

// FeatureVector is a sparse mapping from feature key to value. It is an
// ephemeral per-computation artifact, never persisted.
type FeatureVector map[string]float64

// Vectorize derives the feature vector of a profile. Deterministic and
// order-independent over the profile's own list fields:
//   - each diploma level emits a binary diplome_* feature,
//   - each technical competency emits comp_<nom> valued at its étoiles,
//   - each soft skill emits a binary soft_* feature,
//   - the single longest experience emits experience_months,
//   - each language emits lang_<langue> on the fixed ordinal scale.
func Vectorize(p profil.Profil) FeatureVector {
	features := FeatureVector{}

	for _, d := range p.Diplomes {
		niveau := d.Niveau
		if niveau == "" {
			niveau = "none"
		}
		features[PrefixDiplome+normalizeToken(niveau)] = 1
	}

	for _, c := range p.Competences {
		nom := c.Nom
		if nom == "" {
			nom = "unknown"
		}
		features[PrefixCompetence+normalizeToken(nom)] = float64(c.Etoiles)
	}

	for _, s := range p.SoftSkills {
		features[PrefixSoftSkill+normalizeToken(s)] = 1
	}

	maxMois := 0
	for _, e := range p.Experiences {
		if e.DureeMois > maxMois {
			maxMois = e.DureeMois
		}
	}
	features[KeyExperience] = float64(maxMois)

	for _, l := range p.Langues {
		langue := l.Langue
		if langue == "" {
			langue = "unknown"
		}
		features[PrefixLangue+normalizeToken(langue)] = langueLevels[l.Niveau]
	}

	return features
}

// normalizeToken makes an attribute label usable as a feature key:
// whitespace becomes underscore, "+" becomes the literal token "plus".
func normalizeToken(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "+", "plus")
}

// HumanizeToken reverses normalizeToken for message rendering.
func HumanizeToken(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ReplaceAll(s, "plus", "+")
}
