// Package model defines the core data structures for the AI token analytics hub.
package model

import (
	"time"

	"github.com/yourorg/ai-analytics-hub/internal/types"
)

// TokenRecord is one row of a market snapshot.
// This is the core data structure that flows through the entire pipeline.
type TokenRecord struct {
	// ID is the stable identifier from the data source, unique within a snapshot
	ID string `json:"id"`

	// Name and Symbol are display strings
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	// Price is the current price in the quote currency (USD)
	Price float64 `json:"price"`

	// MarketCap in USD; upstream nulls and negatives are normalized to 0
	MarketCap float64 `json:"market_cap"`

	// MarketCapCategory is derived from MarketCap at ingestion time and
	// never recomputed downstream
	MarketCapCategory types.MarketCapCategory `json:"market_cap_category"`

	// Volume24h is the 24-hour trading volume in USD, clamped to >= 0
	Volume24h float64 `json:"volume_24h"`

	// PriceChange24h and PriceChange7d are signed percentages. A nil value
	// means the source reported no data; aggregate math treats nil as 0 but
	// display keeps the distinction.
	PriceChange24h *float64 `json:"price_change_24h"`
	PriceChange7d  *float64 `json:"price_change_7d"`

	// Image is an optional logo URL
	Image string `json:"image,omitempty"`

	// LastUpdated is the source-supplied freshness marker (RFC3339). It is
	// also the activity proxy consumed by the trend analyzer.
	LastUpdated string `json:"last_updated"`
}

// Change24h returns the 24h price change with nil normalized to 0
func (t TokenRecord) Change24h() float64 {
	if t.PriceChange24h == nil {
		return 0
	}
	return *t.PriceChange24h
}

// Change7d returns the 7d price change with nil normalized to 0
func (t TokenRecord) Change7d() float64 {
	if t.PriceChange7d == nil {
		return 0
	}
	return *t.PriceChange7d
}

// UpdatedAt parses the LastUpdated marker. The boolean is false when the
// source supplied no usable timestamp.
func (t TokenRecord) UpdatedAt() (time.Time, bool) {
	if t.LastUpdated == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, t.LastUpdated)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// TokenDetail is the deep single-token record returned by the detail endpoint.
type TokenDetail struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Homepage    string   `json:"homepage,omitempty"`
	Image       string   `json:"image,omitempty"`

	// Full market stats
	Price             float64  `json:"price"`
	MarketCap         float64  `json:"market_cap"`
	MarketCapRank     int      `json:"market_cap_rank"`
	Volume24h         float64  `json:"volume_24h"`
	High24h           float64  `json:"high_24h"`
	Low24h            float64  `json:"low_24h"`
	PriceChange24h    *float64 `json:"price_change_24h"`
	PriceChange7d     *float64 `json:"price_change_7d"`
	CirculatingSupply float64  `json:"circulating_supply"`
	TotalSupply       float64  `json:"total_supply"`
	ATH               float64  `json:"ath"`
	ATHDate           string   `json:"ath_date,omitempty"`

	// Community stats
	TwitterFollowers  int `json:"twitter_followers"`
	RedditSubscribers int `json:"reddit_subscribers"`
	TelegramUsers     int `json:"telegram_users"`
}

// PricePoint is one entry of a historical market series.
type PricePoint struct {
	// Timestamp in milliseconds since epoch, as delivered by the source
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
	MarketCap float64 `json:"market_cap"`
	Volume    float64 `json:"volume"`
}

// Float64Ptr is a convenience for building optional numeric fields
func Float64Ptr(v float64) *float64 {
	return &v
}
