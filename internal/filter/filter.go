// Package filter applies declarative narrowing and ordering to token collections.
package filter

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/yourorg/ai-analytics-hub/internal/model"
	"github.com/yourorg/ai-analytics-hub/internal/types"
)

// Apply runs the full filter pipeline: cap-range filter, category filter, then
// a stable sort. The input slice is never mutated; the result is a fresh slice.
// Empty input yields empty output.
func Apply(tokens []model.TokenRecord, cfg model.FilterConfig) []model.TokenRecord {
	out := filterRange(tokens, cfg.MarketCapMin, cfg.MarketCapMax)
	out = filterCategory(out, cfg.Category)
	sortTokens(out, cfg.SortBy, cfg.SortOrder)

	logrus.WithFields(logrus.Fields{
		"in":       len(tokens),
		"out":      len(out),
		"category": cfg.Category,
		"sort_by":  cfg.SortBy,
	}).Debug("Filter applied")

	return out
}

// filterRange keeps records whose market cap falls inside [min, max].
// A max of 0 is treated as unbounded so a zero-valued config stays a no-op.
func filterRange(tokens []model.TokenRecord, min, max float64) []model.TokenRecord {
	if max == 0 {
		max = math.Inf(1)
	}
	out := make([]model.TokenRecord, 0, len(tokens))
	for _, t := range tokens {
		if t.MarketCap >= min && t.MarketCap <= max {
			out = append(out, t)
		}
	}
	return out
}

// filterCategory keeps records whose cached bucket label matches exactly.
// The "all" sentinel (or an empty category) disables the filter.
func filterCategory(tokens []model.TokenRecord, category string) []model.TokenRecord {
	if category == "" || category == types.CategoryAll {
		return tokens
	}
	out := make([]model.TokenRecord, 0, len(tokens))
	for _, t := range tokens {
		if string(t.MarketCapCategory) == category {
			out = append(out, t)
		}
	}
	return out
}

// sortTokens orders records in place by the requested key. Unknown sort keys
// are a defensive no-op: the configuration comes from a constrained UI choice
// set and is not worth failing over.
func sortTokens(tokens []model.TokenRecord, key types.SortKey, order string) {
	var value func(model.TokenRecord) float64

	switch key {
	case types.SortByMarketCap:
		value = func(t model.TokenRecord) float64 { return t.MarketCap }
	case types.SortByPrice:
		value = func(t model.TokenRecord) float64 { return t.Price }
	case types.SortByPriceChange24h:
		value = func(t model.TokenRecord) float64 { return t.Change24h() }
	case types.SortByVolume24h:
		value = func(t model.TokenRecord) float64 { return t.Volume24h }
	default:
		logrus.WithField("sort_by", key).Debug("Unknown sort key, leaving order unchanged")
		return
	}

	ascending := order == types.SortAsc
	sort.SliceStable(tokens, func(i, j int) bool {
		if ascending {
			return value(tokens[i]) < value(tokens[j])
		}
		return value(tokens[i]) > value(tokens[j])
	})
}
