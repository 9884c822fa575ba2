package scoring

import (
	"math"

	"employabilite/internal/domain/profil"
)

// Ordinal point scale for diploma levels, and the smaller bonus scale applied
// to the second-best diploma. Raw savoir maxes out at 10 + 3 = 13.
var savoirScores = map[string]float64{
	"Sans diplôme":           0,
	"Diplôme FP NIVEAU 1":    2,
	"Diplôme FP NIVEAU 2":    3,
	"Diplôme FP NIVEAU 3":    4,
	"Diplôme BAC +3":         6,
	"Diplôme Bac +5":         8,
	"Diplôme Bac +7 et plus": 10,
}

var savoirBonus = map[string]float64{
	"Diplôme FP NIVEAU 1":    1,
	"Diplôme FP NIVEAU 2":    1,
	"Diplôme FP NIVEAU 3":    2,
	"Diplôme BAC +3":         2,
	"Diplôme Bac +5":         3,
	"Diplôme Bac +7 et plus": 3,
}

const (
	savoirRawMax      = 13.0
	savoirFaireRawMax = 32.0

	compTechBonusPerExtra = 2.0
	compTechBonusMaxExtra = 3
)

// ResourceResult carries the three normalised sub-scores and their weighted
// combination for one profile.
type ResourceResult struct {
	CSP             string
	SavoirNorm      float64
	SavoirFaireNorm float64
	SavoirEtreNorm  float64
	ResourcesScore  float64
}

// ComputeResources scores the savoir / savoir-faire / savoir-être pillars of
// a profile and combines them with the per-CSP weight table. Returns
// ErrUnknownCategory when the profile's CSP is outside the fixed set.
func ComputeResources(p profil.Profil, weights map[string]ResourceWeights) (ResourceResult, error) {
	w, ok := weights[p.CSP]
	if !ok || !ValidCSP(p.CSP) {
		return ResourceResult{}, ErrUnknownCategory
	}

	savoirNorm := capAt100(savoirRaw(p.Diplomes) / savoirRawMax * 100)
	sfNorm := capAt100(savoirFaireRaw(p.Experiences, p.Competences) / savoirFaireRawMax * 100)
	seNorm := savoirEtreNorm(p.SoftSkills)

	resources := savoirNorm*w.Savoir/100 +
		sfNorm*w.SavoirFaire/100 +
		seNorm*w.SavoirEtre/100

	return ResourceResult{
		CSP:             p.CSP,
		SavoirNorm:      round1(savoirNorm),
		SavoirFaireNorm: round1(sfNorm),
		SavoirEtreNorm:  round1(seNorm),
		ResourcesScore:  round1(resources),
	}, nil
}

// savoirRaw takes the highest diploma's base points plus a small bonus
// indexed by the second-highest diploma, if any.
func savoirRaw(diplomes []profil.Diplome) float64 {
	if len(diplomes) == 0 {
		return 0
	}

	best, second := -1.0, -1.0
	var secondNiveau string
	var bestNiveau string
	for _, d := range diplomes {
		pts := savoirScores[d.Niveau]
		if pts > best || best < 0 {
			second, secondNiveau = best, bestNiveau
			best, bestNiveau = pts, d.Niveau
		} else if pts > second || second < 0 {
			second, secondNiveau = pts, d.Niveau
		}
	}

	raw := best
	if second >= 0 {
		raw += savoirBonus[secondNiveau]
	}
	return raw
}

// experienceScore is a step function of the single longest experience.
func experienceScore(experiences []profil.Experience) float64 {
	if len(experiences) == 0 {
		return 0
	}
	maxMois := 0
	for _, e := range experiences {
		if e.DureeMois > maxMois {
			maxMois = e.DureeMois
		}
	}
	switch {
	case maxMois < 12:
		return 1
	case maxMois < 36:
		return 3
	case maxMois < 60:
		return 5
	default:
		return 8
	}
}

// compTechScore steps on the competency count, with 2 bonus points per
// competency beyond the fourth, capped at 3 extras.
func compTechScore(comps []profil.CompetenceTechnique) float64 {
	num := len(comps)
	if num == 0 {
		return 0
	}

	var base float64
	switch {
	case num <= 2:
		base = 2
	case num == 3:
		base = 5
	default:
		base = 8
	}

	extras := num - 4
	if extras < 0 {
		extras = 0
	}
	if extras > compTechBonusMaxExtra {
		extras = compTechBonusMaxExtra
	}
	return base + float64(extras)*compTechBonusPerExtra
}

func savoirFaireRaw(experiences []profil.Experience, comps []profil.CompetenceTechnique) float64 {
	return compTechScore(comps) + 2*experienceScore(experiences)
}

// savoirEtreNorm is binary: any soft skill at all scores full marks.
func savoirEtreNorm(softSkills []string) float64 {
	if len(softSkills) > 0 {
		return 100
	}
	return 0
}

func capAt100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
