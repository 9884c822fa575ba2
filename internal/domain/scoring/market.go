package scoring

// Neutral durée score when a CSP has no placement history at all.
const NeutralDureeScore = 50.0

// dureeScaleDays is the linear scale ceiling: a 180-day average wait maps
// to 0, an immediate placement to 100.
const dureeScaleDays = 180.0

// MarketInputs are the per-CSP aggregates read fresh from the store for each
// computation. AvgWaitDays is nil when the CSP has no placement history.
type MarketInputs struct {
	DemandCount int64
	OpenOffers  int64
	AvgWaitDays *float64
}

// MarketResult carries the normalised tension and durée components and their
// weighted combination.
type MarketResult struct {
	CSP         string
	TensionNorm float64
	DureeNorm   float64
	MarketScore float64
}

// ComputeMarket blends labor-market tension and average wait time for a CSP.
// Returns ErrUnknownCategory for a CSP outside the fixed set.
func ComputeMarket(csp string, in MarketInputs, weights map[string]MarketWeights) (MarketResult, error) {
	w, ok := weights[csp]
	if !ok || !ValidCSP(csp) {
		return MarketResult{}, ErrUnknownCategory
	}

	tension := tensionScore(in.OpenOffers, in.DemandCount)
	duree := dureeScore(in.AvgWaitDays)

	market := tension*w.Tension + duree*w.Duree

	return MarketResult{
		CSP:         csp,
		TensionNorm: round1(tension),
		DureeNorm:   round1(duree),
		MarketScore: round1(market),
	}, nil
}

// tensionScore maps the offer/demand ratio through 100*r/(1+r): bounded in
// [0,100) and saturating slowly, so the ratio has to reach about 4 before the
// score approaches 100. Zero demand short-circuits to 0.
func tensionScore(openOffers, demandCount int64) float64 {
	if demandCount == 0 {
		return 0
	}
	ratio := float64(openOffers) / float64(demandCount)
	return capAt100(100 * ratio / (1 + ratio))
}

// dureeScore inverts the average wait linearly onto [0,100], floored at 0.
// A nil average (no placement history) yields the documented neutral 50.
func dureeScore(avgWaitDays *float64) float64 {
	if avgWaitDays == nil {
		return NeutralDureeScore
	}
	score := 100 - (*avgWaitDays/dureeScaleDays)*100
	if score < 0 {
		return 0
	}
	return score
}
