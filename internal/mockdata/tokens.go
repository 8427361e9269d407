// Package mockdata provides simulated catalog and fixture data.
//
// Per the product design, the AI agents catalog and the new-launch feed are
// synthetic: there is no upstream source for either, so these providers exist
// to keep the surrounding pages functional. The token generator doubles as a
// test fixture for the pipeline packages.
package mockdata

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/yourorg/ai-analytics-hub/internal/classify"
	"github.com/yourorg/ai-analytics-hub/internal/model"
)

var tokenWords = []string{
	"Neural", "Brain", "Synapse", "Cortex", "Mind", "Think", "Logic", "Smart",
	"Quantum", "Deep", "Learn", "Vision", "GPT", "AI", "ML", "Intel", "Cognitive",
	"Data", "Graph", "Compute", "Bot", "Agent", "Node", "Network", "Tensor", "Vector",
}

var tokenSuffixes = []string{
	"Network", "Chain", "Protocol", "AI", "Coin", "Token", "DAO", "Base", "Matrix",
	"Net", "Core", "Intelligence", "Stream", "Flow",
}

// Tokens generates n synthetic token records with a fixed seed so results are
// reproducible across runs. Market caps follow a log-normal distribution
// centered around $10M, which roughly matches the real AI token universe.
func Tokens(n int) []model.TokenRecord {
	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	used := map[string]struct{}{}
	tokens := make([]model.TokenRecord, 0, n)

	for i := 0; i < n; i++ {
		name := uniqueName(rng, used)
		marketCap := math.Exp(rng.NormFloat64()*2.5 + 23)

		var price float64
		if rng.Float64() < 0.7 {
			price = math.Exp(rng.NormFloat64()*3 - 1)
		} else {
			price = math.Exp(rng.NormFloat64()*2 + 4)
		}

		change24h := rng.NormFloat64() * 10
		change7d := rng.NormFloat64() * 20
		daysAgo := rng.Intn(29) + 1

		tokens = append(tokens, model.TokenRecord{
			ID:                strings.ToLower(strings.ReplaceAll(name, " ", "-")),
			Name:              name,
			Symbol:            symbolFor(name),
			Price:             price,
			MarketCap:         marketCap,
			MarketCapCategory: classify.Classify(marketCap),
			Volume24h:         marketCap * math.Exp(rng.NormFloat64()-1),
			PriceChange24h:    &change24h,
			PriceChange7d:     &change7d,
			Image:             fmt.Sprintf("https://example.com/coins/%d.png", i),
			LastUpdated:       now.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
		})
	}

	return tokens
}

func uniqueName(rng *rand.Rand, used map[string]struct{}) string {
	for {
		var name string
		if rng.Float64() < 0.7 {
			name = tokenWords[rng.Intn(len(tokenWords))] + tokenSuffixes[rng.Intn(len(tokenSuffixes))]
		} else {
			name = tokenWords[rng.Intn(len(tokenWords))]
		}
		if _, ok := used[name]; !ok {
			used[name] = struct{}{}
			return name
		}
	}
}

// symbolFor derives a ticker from the uppercase letters of a name,
// falling back to the first letters when there are none.
func symbolFor(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) && b.Len() < 4 {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		n := 4
		if len(name) < n {
			n = len(name)
		}
		return strings.ToUpper(name[:n])
	}
	return b.String()
}
