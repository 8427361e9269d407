// Package aggregate computes display-ready statistics over token collections.
package aggregate

import (
	"sort"

	"github.com/yourorg/ai-analytics-hub/internal/model"
	"github.com/yourorg/ai-analytics-hub/internal/types"
)

// CalculateStats computes summary statistics for a snapshot. On empty input
// every numeric field is 0 and the histogram is empty, never an error.
func CalculateStats(tokens []model.TokenRecord) model.MarketStats {
	stats := model.MarketStats{
		TokenCountsByCap: map[types.MarketCapCategory]int{},
	}
	if len(tokens) == 0 {
		return stats
	}

	var totalChange float64
	for _, t := range tokens {
		stats.TotalMarketCap += t.MarketCap
		totalChange += t.Change24h()
		stats.TokenCountsByCap[t.MarketCapCategory]++
	}

	stats.TotalTokens = len(tokens)
	stats.Avg24hChange = totalChange / float64(len(tokens))
	return stats
}

// TopGainersLosers returns the n records with the most positive and the most
// negative 24h price change. Gainers come back best-first, losers worst-first.
// Ties keep their pre-sort relative order. A collection shorter than n returns
// what is available; n <= 0 or an empty collection returns two empty slices.
func TopGainersLosers(tokens []model.TokenRecord, n int) (gainers, losers []model.TokenRecord) {
	gainers = []model.TokenRecord{}
	losers = []model.TokenRecord{}
	if len(tokens) == 0 || n <= 0 {
		return gainers, losers
	}

	sorted := make([]model.TokenRecord, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Change24h() < sorted[j].Change24h()
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	losers = append(losers, sorted[:n]...)

	// Last n reversed, so the strongest gainer comes first
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		gainers = append(gainers, sorted[i])
	}

	return gainers, losers
}
