// Package recommend derives prescriptive recommendations from the feature
// gaps between a profile and the average of its optimal peers.
package recommend

import (
	"sort"
)

// Canonical tuning constants. The historical model carried two near-duplicate
// variants of these (gap cutoff 0.5 vs 1.0, top 5 vs 6); the values below are
// the single canonical set (see DESIGN.md).
const (
	// GapThreshold is the minimum peer-average shortfall considered a
	// meaningful gap rather than noise.
	GapThreshold = 1.0

	// MaxPrescriptions bounds the number of gaps turned into messages.
	MaxPrescriptions = 5
)

// Gap is one feature where the optimal-peer average exceeds the target.
type Gap struct {
	Feature  string
	Strength float64
}

// ComputeGaps subtracts the target's aligned vector from the peer mean,
// keeps the gaps above GapThreshold and returns them sorted by descending
// strength (ties broken by feature key for determinism).
func ComputeGaps(peerMean, target []float64, keys []string) []Gap {
	gaps := make([]Gap, 0)
	for i, k := range keys {
		if i >= len(peerMean) || i >= len(target) {
			break
		}
		diff := peerMean[i] - target[i]
		if diff > GapThreshold {
			gaps = append(gaps, Gap{Feature: k, Strength: diff})
		}
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Strength != gaps[j].Strength {
			return gaps[i].Strength > gaps[j].Strength
		}
		return gaps[i].Feature < gaps[j].Feature
	})

	if len(gaps) > MaxPrescriptions {
		gaps = gaps[:MaxPrescriptions]
	}
	return gaps
}
