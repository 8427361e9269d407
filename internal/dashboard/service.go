// Package dashboard orchestrates the data pipeline behind the API: it owns
// the snapshot cache, the market data client, and the snapshot guard, and
// exposes the display-ready views the presentation layer binds to.
package dashboard

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/yourorg/ai-analytics-hub/internal/aggregate"
	"github.com/yourorg/ai-analytics-hub/internal/cache"
	"github.com/yourorg/ai-analytics-hub/internal/filter"
	"github.com/yourorg/ai-analytics-hub/internal/guard"
	"github.com/yourorg/ai-analytics-hub/internal/model"
	"github.com/yourorg/ai-analytics-hub/internal/trend"
)

// topMoversCount is how many gainers and losers the dashboard view carries.
const topMoversCount = 5

// Fetcher is the upstream market data dependency.
type Fetcher interface {
	FetchAITokens(ctx context.Context) []model.TokenRecord
	FetchTokenDetail(ctx context.Context, id string) *model.TokenDetail
	FetchTokenHistory(ctx context.Context, id string, days int) []model.PricePoint
}

// Service coordinates fetch, cache, guard, and the pure pipeline stages.
type Service struct {
	fetcher Fetcher
	cache   *cache.Cache
	guard   *guard.SnapshotGuard
	logger  *logrus.Entry
}

// View is the full dashboard payload: one filtered snapshot plus everything
// derived from it. The field shapes are the stable contract with the
// presentation layer.
type View struct {
	Tokens  []model.TokenRecord `json:"tokens"`
	Stats   model.MarketStats   `json:"stats"`
	Gainers []model.TokenRecord `json:"gainers"`
	Losers  []model.TokenRecord `json:"losers"`
	Trends  []model.TrendPoint  `json:"trends"`
	// TrendNote documents that the trend is an approximation, not launch-date
	// ground truth; the presentation layer is expected to surface it.
	TrendNote string `json:"trend_note"`
}

const trendNote = "Activity trend is approximated from last-update recency; " +
	"the upstream source does not expose true launch dates."

// NewService wires the orchestration layer together.
func NewService(fetcher Fetcher, c *cache.Cache, g *guard.SnapshotGuard) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   c,
		guard:   g,
		logger:  logrus.WithField("component", "dashboard"),
	}
}

// Tokens returns the current snapshot, from cache when fresh. A refresh that
// the guard rejects falls back to the last good snapshot; with no fallback
// available the result is empty, which callers render as a "no data" state.
func (s *Service) Tokens(ctx context.Context) []model.TokenRecord {
	key := cache.Key("ai_tokens")
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]model.TokenRecord)
	}

	tokens := s.fetcher.FetchAITokens(ctx)
	if err := s.guard.Check(tokens); err != nil {
		s.logger.Warnf("Snapshot rejected: %v", err)
		if lastGood := s.guard.LastGood(); lastGood != nil {
			return lastGood
		}
		return []model.TokenRecord{}
	}

	s.cache.Set(key, tokens)
	return tokens
}

// Refresh purges the cache and fetches a fresh snapshot.
func (s *Service) Refresh(ctx context.Context) []model.TokenRecord {
	s.cache.Purge()
	return s.Tokens(ctx)
}

// View builds the full dashboard payload for one filter configuration.
// Stats, movers, and trends are computed over the filtered collection so the
// page stays internally consistent.
func (s *Service) View(ctx context.Context, cfg model.FilterConfig) View {
	filtered := filter.Apply(s.Tokens(ctx), cfg)
	gainers, losers := aggregate.TopGainersLosers(filtered, topMoversCount)

	return View{
		Tokens:    filtered,
		Stats:     aggregate.CalculateStats(filtered),
		Gainers:   gainers,
		Losers:    losers,
		Trends:    trend.LaunchTrends(filtered),
		TrendNote: trendNote,
	}
}

// TokenDetail returns the deep record for one token, cached per ID.
// A nil result means the data is unavailable.
func (s *Service) TokenDetail(ctx context.Context, id string) *model.TokenDetail {
	key := cache.Key("token_detail", id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.TokenDetail)
	}

	detail := s.fetcher.FetchTokenDetail(ctx, id)
	if detail != nil {
		s.cache.Set(key, detail)
	}
	return detail
}

// TokenHistory returns the historical series for one token, cached per ID and range.
func (s *Service) TokenHistory(ctx context.Context, id string, days int) []model.PricePoint {
	key := cache.Key("token_history", id, strconv.Itoa(days))
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]model.PricePoint)
	}

	points := s.fetcher.FetchTokenHistory(ctx, id, days)
	if len(points) > 0 {
		s.cache.Set(key, points)
	}
	return points
}

// GuardState exposes the snapshot guard state for the status endpoint.
func (s *Service) GuardState() guard.State {
	return s.guard.GetState()
}

// ResetGuard forces the snapshot guard closed.
func (s *Service) ResetGuard() {
	s.guard.Reset()
}

// CacheSize reports the number of memoized entries.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}
