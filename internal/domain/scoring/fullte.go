package scoring

// OptimalThreshold is the single global gate: profiles at or above it are
// classified Optimale, serve as positive exemplars for peer comparison, and
// are exempt from recommendation generation.
const OptimalThreshold = 70.0

// Classification tiers (French labels, as surfaced to callers).
const (
	ClassOptimale = "Employabilité Optimale"
	ClassMoyenne  = "Employabilité moyenne"
	ClassFaible   = "Employabilité faible"
	ClassNulle    = "Employabilité nulle"
)

// FullTEResult is the blended employability score for one profile.
type FullTEResult struct {
	CSP            string
	FullTE         float64
	Classification string
}

// CombineFullTE blends the resource and market scores with the per-CSP blend
// weights and classifies the result.
func CombineFullTE(csp string, resourcesScore, marketScore float64, weights map[string]BlendWeights) (FullTEResult, error) {
	w, ok := weights[csp]
	if !ok || !ValidCSP(csp) {
		return FullTEResult{}, ErrUnknownCategory
	}

	fullTE := resourcesScore*w.Resources/100 + marketScore*w.Market/100

	return FullTEResult{
		CSP:            csp,
		FullTE:         round1(fullTE),
		Classification: ClassifyTE(fullTE),
	}, nil
}

// ClassifyTE maps a blended score onto the four-tier step function.
func ClassifyTE(te float64) string {
	switch {
	case te >= OptimalThreshold:
		return ClassOptimale
	case te >= 40:
		return ClassMoyenne
	case te >= 20:
		return ClassFaible
	default:
		return ClassNulle
	}
}
