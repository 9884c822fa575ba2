package scoring

import "fmt"

// ResourceWeights splits the resource score between savoir, savoir-faire and
// savoir-être. Percentages, summing to 100 per CSP.
type ResourceWeights struct {
	Savoir      float64
	SavoirFaire float64
	SavoirEtre  float64
}

// MarketWeights splits the market score between tension and durée d'attente.
// Fractions, summing to 1.0 per CSP.
type MarketWeights struct {
	Tension float64
	Duree   float64
}

// BlendWeights splits the full TE between resource and market components.
// Percentages, summing to 100 per CSP.
type BlendWeights struct {
	Resources float64
	Market    float64
}

// WeightConfig is the full per-CSP weight policy. It is built once at startup
// (see Defaults) and passed explicitly into the scorers; nothing mutates it
// after Validate.
type WeightConfig struct {
	Resources map[string]ResourceWeights
	Market    map[string]MarketWeights
	Blend     map[string]BlendWeights
}

// Defaults returns the weight policy tables calibrated for the four CSP
// categories.
func Defaults() WeightConfig {
	return WeightConfig{
		Resources: map[string]ResourceWeights{
			CSPManagement:             {Savoir: 45, SavoirFaire: 30, SavoirEtre: 25},
			CSPPersonnelProfessionnel: {Savoir: 33, SavoirFaire: 50, SavoirEtre: 17},
			CSPEncadrementSupport:     {Savoir: 34, SavoirFaire: 33, SavoirEtre: 33},
			CSPPersonnelAide:          {Savoir: 0, SavoirFaire: 100, SavoirEtre: 0},
		},
		Market: map[string]MarketWeights{
			CSPManagement:             {Tension: 0.7, Duree: 0.3},
			CSPPersonnelProfessionnel: {Tension: 0.5, Duree: 0.5},
			CSPEncadrementSupport:     {Tension: 0.6, Duree: 0.4},
			CSPPersonnelAide:          {Tension: 0.3, Duree: 0.7},
		},
		Blend: map[string]BlendWeights{
			CSPManagement:             {Resources: 80, Market: 20},
			CSPPersonnelProfessionnel: {Resources: 50, Market: 50},
			CSPEncadrementSupport:     {Resources: 40, Market: 60},
			CSPPersonnelAide:          {Resources: 10, Market: 90},
		},
	}
}

const weightSumTolerance = 1e-9

// Validate checks that every CSP has an entry in each table and that the
// sums hold (100 for resource and blend weights, 1.0 for market weights).
// Bootstrap aborts on a validation error.
func (c WeightConfig) Validate() error {
	for _, csp := range Categories() {
		rw, ok := c.Resources[csp]
		if !ok {
			return fmt.Errorf("resource weights: missing CSP %q", csp)
		}
		if s := rw.Savoir + rw.SavoirFaire + rw.SavoirEtre; !closeTo(s, 100) {
			return fmt.Errorf("resource weights for %q sum to %.4f, want 100", csp, s)
		}

		mw, ok := c.Market[csp]
		if !ok {
			return fmt.Errorf("market weights: missing CSP %q", csp)
		}
		if s := mw.Tension + mw.Duree; !closeTo(s, 1.0) {
			return fmt.Errorf("market weights for %q sum to %.4f, want 1.0", csp, s)
		}

		bw, ok := c.Blend[csp]
		if !ok {
			return fmt.Errorf("blend weights: missing CSP %q", csp)
		}
		if s := bw.Resources + bw.Market; !closeTo(s, 100) {
			return fmt.Errorf("blend weights for %q sum to %.4f, want 100", csp, s)
		}
	}
	return nil
}

func closeTo(got, want float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= weightSumTolerance
}
