// Package classify assigns token records to market-capitalization buckets.
package classify

import (
	"github.com/yourorg/ai-analytics-hub/internal/types"
)

// Bucket thresholds in USD, inclusive lower bounds.
const (
	largeCapFloor = 1_000_000_000
	midCapFloor   = 100_000_000
	smallCapFloor = 10_000_000
	microCapFloor = 1_000_000
	nanoCapFloor  = 500_000
)

// Classify maps a market cap to its bucket. Negative input is treated as a
// data-quality error and falls into the lowest bucket, same as 0.
func Classify(marketCap float64) types.MarketCapCategory {
	switch {
	case marketCap >= largeCapFloor:
		return types.CapLarge
	case marketCap >= midCapFloor:
		return types.CapMid
	case marketCap >= smallCapFloor:
		return types.CapSmall
	case marketCap >= microCapFloor:
		return types.CapMicro
	case marketCap >= nanoCapFloor:
		return types.CapNano
	default:
		return types.CapUltraNano
	}
}

// Clamp normalizes an optional non-negative numeric field: nil and negative
// values both become 0, so bad upstream data never propagates as negative.
func Clamp(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
