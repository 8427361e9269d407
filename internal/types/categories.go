// Package types contains shared type definitions used across multiple packages
package types

// MarketCapCategory is one of six fixed labels partitioning tokens by market capitalization
type MarketCapCategory string

// Market cap buckets, largest first. The labels double as filter inputs, so the
// strings must match on both sides of the API boundary.
const (
	CapLarge     MarketCapCategory = "Large Cap (>$1B)"
	CapMid       MarketCapCategory = "Mid Cap ($100M-$1B)"
	CapSmall     MarketCapCategory = "Small Cap ($10M-$100M)"
	CapMicro     MarketCapCategory = "Micro Cap ($1M-$10M)"
	CapNano      MarketCapCategory = "Nano Cap ($500K-$1M)"
	CapUltraNano MarketCapCategory = "Ultra Nano Cap (<$500K)"
)

// CategoryAll is the filter sentinel meaning "no category restriction"
const CategoryAll = "all"

// Categories returns all buckets ordered from largest to smallest cap
func Categories() []MarketCapCategory {
	return []MarketCapCategory{CapLarge, CapMid, CapSmall, CapMicro, CapNano, CapUltraNano}
}

// SortKey identifies a token field the filter engine can sort by
type SortKey string

// Sortable token fields
const (
	SortByMarketCap      SortKey = "market_cap"
	SortByPrice          SortKey = "price"
	SortByPriceChange24h SortKey = "price_change_24h"
	SortByVolume24h      SortKey = "volume_24h"
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)
