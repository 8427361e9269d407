package main

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/yourorg/ai-analytics-hub/internal/mockdata"
	"github.com/yourorg/ai-analytics-hub/internal/model"
)

// demoUniverseSize is how many synthetic tokens demo mode serves
const demoUniverseSize = 150

// demoFetcher serves seeded synthetic data through the same pipeline the real
// client feeds. Demo mode keeps the whole API usable without upstream quota.
type demoFetcher struct{}

func (demoFetcher) FetchAITokens(ctx context.Context) []model.TokenRecord {
	return mockdata.Tokens(demoUniverseSize)
}

func (demoFetcher) FetchTokenDetail(ctx context.Context, id string) *model.TokenDetail {
	for _, tok := range mockdata.Tokens(demoUniverseSize) {
		if tok.ID != id {
			continue
		}
		return &model.TokenDetail{
			ID:                tok.ID,
			Name:              tok.Name,
			Symbol:            tok.Symbol,
			Description:       "Synthetic demo token generated for offline use.",
			Categories:        []string{"Artificial Intelligence (AI)"},
			Image:             tok.Image,
			Price:             tok.Price,
			MarketCap:         tok.MarketCap,
			Volume24h:         tok.Volume24h,
			High24h:           tok.Price * 1.05,
			Low24h:            tok.Price * 0.95,
			PriceChange24h:    tok.PriceChange24h,
			PriceChange7d:     tok.PriceChange7d,
			CirculatingSupply: tok.MarketCap / tok.Price,
		}
	}
	return nil
}

// FetchTokenHistory produces a seeded random walk around the token's current
// price, one point per day.
func (demoFetcher) FetchTokenHistory(ctx context.Context, id string, days int) []model.PricePoint {
	var current *model.TokenRecord
	for _, tok := range mockdata.Tokens(demoUniverseSize) {
		if tok.ID == id {
			current = &tok
			break
		}
	}
	if current == nil {
		return []model.PricePoint{}
	}

	h := fnv.New64a()
	h.Write([]byte(id))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	now := time.Now()
	points := make([]model.PricePoint, 0, days)
	price := current.Price
	for i := days - 1; i >= 0; i-- {
		ts := now.AddDate(0, 0, -i)
		points = append(points, model.PricePoint{
			Timestamp: ts.UnixMilli(),
			Price:     price,
			MarketCap: current.MarketCap * price / current.Price,
			Volume:    current.Volume24h * (0.5 + rng.Float64()),
		})
		price *= 1 + rng.NormFloat64()*0.03
	}
	return points
}
