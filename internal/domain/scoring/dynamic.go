package scoring

import "math"

// MinPlacementsForDynamicWeights is the history size below which the static
// weight table is kept as-is.
const MinPlacementsForDynamicWeights = 5

// PlacedProfile is one successful placement joined with the placed profile's
// stored resource sub-scores.
type PlacedProfile struct {
	DureeAttenteJours float64
	SavoirNorm        float64
	SavoirFaireNorm   float64
	SavoirEtreNorm    float64
}

// DynamicResourceWeights recalibrates the savoir / savoir-faire / savoir-être
// split for one CSP from its placement history. A short wait is treated as a
// successful outcome; each sub-score's absolute Pearson correlation with that
// success signal becomes its relative weight, normalised to sum 100.
//
// Falls back to the supplied static weights (with ErrInsufficientData) when
// the history is too small or carries no correlation signal at all. The
// static table itself is never mutated.
func DynamicResourceWeights(placed []PlacedProfile, fallback ResourceWeights) (ResourceWeights, error) {
	if len(placed) < MinPlacementsForDynamicWeights {
		return fallback, ErrInsufficientData
	}

	maxDuree := 0.0
	for _, p := range placed {
		if p.DureeAttenteJours > maxDuree {
			maxDuree = p.DureeAttenteJours
		}
	}
	if maxDuree == 0 {
		maxDuree = dureeScaleDays
	}

	success := make([]float64, len(placed))
	savoirs := make([]float64, len(placed))
	faires := make([]float64, len(placed))
	etres := make([]float64, len(placed))
	for i, p := range placed {
		success[i] = 100 - p.DureeAttenteJours/maxDuree*100
		savoirs[i] = p.SavoirNorm
		faires[i] = p.SavoirFaireNorm
		etres[i] = p.SavoirEtreNorm
	}

	corrs := [3]float64{
		math.Abs(pearson(success, savoirs)),
		math.Abs(pearson(success, faires)),
		math.Abs(pearson(success, etres)),
	}

	sum := corrs[0] + corrs[1] + corrs[2]
	if sum == 0 {
		return fallback, ErrInsufficientData
	}

	// Round the first two weights and give the third the remainder, so the
	// reported split always sums to exactly 100.
	savoir := math.Round(corrs[0] / sum * 100)
	faire := math.Round(corrs[1] / sum * 100)
	return ResourceWeights{
		Savoir:      savoir,
		SavoirFaire: faire,
		SavoirEtre:  100 - savoir - faire,
	}, nil
}

// pearson computes the sample correlation coefficient. Returns 0 for
// degenerate inputs (length < 2 or zero variance).
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return 0
	}

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
