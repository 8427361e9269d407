package model

import (
	"math"

	"github.com/yourorg/ai-analytics-hub/internal/types"
)

// MarketStats holds summary statistics over a token collection. The shape is a
// stable contract consumed by the presentation layer.
type MarketStats struct {
	TotalTokens      int                             `json:"total_tokens"`
	TotalMarketCap   float64                         `json:"total_market_cap"`
	Avg24hChange     float64                         `json:"avg_24h_change"`
	TokenCountsByCap map[types.MarketCapCategory]int `json:"token_counts_by_cap"`
}

// TrendPoint is one month bucket of the activity trend.
type TrendPoint struct {
	// Month in "2006-01" form
	Month string `json:"month"`
	Count int    `json:"count"`
}

// FilterConfig is the declarative narrowing/ordering applied to a snapshot.
// Constructed fresh per query, immutable once applied.
type FilterConfig struct {
	MarketCapMin float64       `json:"market_cap_min"`
	MarketCapMax float64       `json:"market_cap_max"`
	Category     string        `json:"category"`
	SortBy       types.SortKey `json:"sort_by"`
	SortOrder    string        `json:"sort_order"`
}

// DefaultFilterConfig returns the no-op configuration: full cap range,
// all categories, market cap descending.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MarketCapMin: 0,
		MarketCapMax: math.Inf(1),
		Category:     types.CategoryAll,
		SortBy:       types.SortByMarketCap,
		SortOrder:    types.SortDesc,
	}
}
