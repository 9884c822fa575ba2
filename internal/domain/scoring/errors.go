package scoring

import "errors"

var (
	// ErrUnknownCategory marks a profile or market query whose CSP is outside
	// the fixed 4-set. Treated as a data-integrity problem, distinct from a
	// missing record.
	ErrUnknownCategory = errors.New("unknown CSP category")

	// ErrInsufficientData marks a computation that has no historical data to
	// work from (e.g. no placements for a CSP). Callers substitute a neutral
	// default rather than failing.
	ErrInsufficientData = errors.New("insufficient data")
)
