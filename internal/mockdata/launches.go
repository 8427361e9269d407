package mockdata

import (
	"math"
	"math/rand"
	"time"

	"github.com/yourorg/ai-analytics-hub/internal/classify"
	"github.com/yourorg/ai-analytics-hub/internal/types"
)

// Launch is one synthetic new-token-launch entry.
type Launch struct {
	Name              string                  `json:"name"`
	Symbol            string                  `json:"symbol"`
	Price             float64                 `json:"price"`
	MarketCap         float64                 `json:"market_cap"`
	MarketCapCategory types.MarketCapCategory `json:"market_cap_category"`
	PriceChange24h    float64                 `json:"price_change_24h"`
	PriceChange7d     float64                 `json:"price_change_7d"`
	Volume24h         float64                 `json:"volume_24h"`
	CirculatingSupply float64                 `json:"circulating_supply"`
	LaunchDate        string                  `json:"launch_date"`
	DaysSinceLaunch   int                     `json:"days_since_launch"`
	Category          string                  `json:"category"`
	RiskScore         int                     `json:"risk_score"`
}

var launchCategories = []string{
	"Machine Learning", "Data Infrastructure", "AI Agents", "Compute Network",
	"Language Models", "Computer Vision", "Prediction Markets",
}

// Launches generates n synthetic recent launches with a fixed seed. Most are
// under 30 days old and carry small caps, mirroring how real launch feeds skew.
func Launches(n int) []Launch {
	rng := rand.New(rand.NewSource(7))
	now := time.Now()

	used := map[string]struct{}{}
	launches := make([]Launch, 0, n)
	for i := 0; i < n; i++ {
		name := uniqueName(rng, used)
		marketCap := math.Min(70_000_000, 500_000+rng.ExpFloat64()*10_000_000)

		isNew := rng.Float64() < 0.7
		var daysAgo int
		var change24h float64
		if isNew {
			daysAgo = rng.Intn(30) + 1
			change24h = -15 + rng.Float64()*65
		} else {
			daysAgo = rng.Intn(60) + 31
			change24h = -20 + rng.Float64()*60
		}

		change7d := change24h*1.5 + (rng.Float64()*40 - 20)
		change7d = math.Max(-50, math.Min(100, change7d))

		price := math.Exp(rng.Float64()*(math.Log(10)-math.Log(0.00001)) + math.Log(0.00001))
		volume := marketCap * (0.05 + rng.Float64()*0.25)

		launches = append(launches, Launch{
			Name:              name,
			Symbol:            symbolFor(name),
			Price:             price,
			MarketCap:         marketCap,
			MarketCapCategory: classify.Classify(marketCap),
			PriceChange24h:    change24h,
			PriceChange7d:     change7d,
			Volume24h:         volume,
			CirculatingSupply: marketCap / price,
			LaunchDate:        now.AddDate(0, 0, -daysAgo).Format("2006-01-02"),
			DaysSinceLaunch:   daysAgo,
			Category:          launchCategories[rng.Intn(len(launchCategories))],
			RiskScore:         riskScore(daysAgo, marketCap, change24h, volume),
		})
	}

	return launches
}

// riskScore totals risk factors on a 1-10 scale: launch recency, small cap,
// volatility, and thin liquidity each add points.
func riskScore(daysSinceLaunch int, marketCap, change24h, volume24h float64) int {
	score := 0
	switch {
	case daysSinceLaunch < 10:
		score += 3
	case daysSinceLaunch < 30:
		score += 2
	}
	switch {
	case marketCap < 1_000_000:
		score += 3
	case marketCap < 5_000_000:
		score += 2
	}
	if math.Abs(change24h) > 30 {
		score += 2
	}
	if volume24h < marketCap*0.05 {
		score += 2
	}
	if score == 0 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}
