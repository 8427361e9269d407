package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/ai-analytics-hub/internal/cache"
	"github.com/yourorg/ai-analytics-hub/internal/classify"
	"github.com/yourorg/ai-analytics-hub/internal/guard"
	"github.com/yourorg/ai-analytics-hub/internal/model"
	"github.com/yourorg/ai-analytics-hub/internal/types"
)

// stubFetcher counts calls and serves canned data.
type stubFetcher struct {
	tokens     []model.TokenRecord
	detail     *model.TokenDetail
	history    []model.PricePoint
	fetchCalls int
}

func (f *stubFetcher) FetchAITokens(ctx context.Context) []model.TokenRecord {
	f.fetchCalls++
	return f.tokens
}

func (f *stubFetcher) FetchTokenDetail(ctx context.Context, id string) *model.TokenDetail {
	return f.detail
}

func (f *stubFetcher) FetchTokenHistory(ctx context.Context, id string, days int) []model.PricePoint {
	return f.history
}

func record(id string, marketCap, change24h float64) model.TokenRecord {
	return model.TokenRecord{
		ID:                id,
		MarketCap:         marketCap,
		MarketCapCategory: classify.Classify(marketCap),
		PriceChange24h:    model.Float64Ptr(change24h),
		LastUpdated:       "2026-08-15T00:00:00Z",
	}
}

func newTestService(f *stubFetcher) *Service {
	return NewService(f, cache.New(time.Minute), guard.New(0.8, time.Minute))
}

func TestTokens_CachesSnapshot(t *testing.T) {
	f := &stubFetcher{tokens: []model.TokenRecord{record("a", 5e9, 1)}}
	svc := newTestService(f)
	ctx := context.Background()

	first := svc.Tokens(ctx)
	second := svc.Tokens(ctx)

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.fetchCalls, "second call should be served from cache")
	assert.Equal(t, 1, svc.CacheSize())
}

func TestRefresh_PurgesCache(t *testing.T) {
	f := &stubFetcher{tokens: []model.TokenRecord{record("a", 5e9, 1)}}
	svc := newTestService(f)
	ctx := context.Background()

	svc.Tokens(ctx)
	svc.Refresh(ctx)

	assert.Equal(t, 2, f.fetchCalls, "refresh should bypass the cache")
}

func TestTokens_GuardFallback(t *testing.T) {
	f := &stubFetcher{tokens: []model.TokenRecord{
		record("a", 5e9, 1),
		record("b", 5e7, 2),
	}}
	svc := newTestService(f)
	ctx := context.Background()

	require.Len(t, svc.Tokens(ctx), 2)

	// Upstream starts returning nothing; the guard trips and the last good
	// snapshot keeps serving.
	f.tokens = nil
	svc.Refresh(ctx)
	tokens := svc.Refresh(ctx)

	assert.Len(t, tokens, 2, "guard fallback should serve the last good snapshot")
	assert.Equal(t, guard.StateOpen, svc.GuardState())
}

func TestTokens_EmptyWithoutFallback(t *testing.T) {
	f := &stubFetcher{}
	svc := newTestService(f)

	tokens := svc.Tokens(context.Background())

	assert.NotNil(t, tokens)
	assert.Empty(t, tokens, "no data and no fallback should render as empty")
	assert.Equal(t, guard.StateClosed, svc.GuardState(), "first empty fetch is not an anomaly")
}

func TestView(t *testing.T) {
	f := &stubFetcher{tokens: []model.TokenRecord{
		record("large", 5e9, 10),
		record("mid", 5e7, -4),
		record("nano", 4e5, 2),
	}}
	svc := newTestService(f)

	view := svc.View(context.Background(), model.DefaultFilterConfig())

	assert.Len(t, view.Tokens, 3)
	assert.Equal(t, 3, view.Stats.TotalTokens)
	assert.Equal(t, 5.0504e9, view.Stats.TotalMarketCap)
	require.NotEmpty(t, view.Gainers)
	assert.Equal(t, "large", view.Gainers[0].ID)
	require.NotEmpty(t, view.Losers)
	assert.Equal(t, "mid", view.Losers[0].ID)
	require.Len(t, view.Trends, 1)
	assert.Equal(t, "2026-08", view.Trends[0].Month)
	assert.NotEmpty(t, view.TrendNote)
}

func TestView_FilterNarrowsEverything(t *testing.T) {
	f := &stubFetcher{tokens: []model.TokenRecord{
		record("large", 5e9, 10),
		record("mid", 5e7, -4),
	}}
	svc := newTestService(f)

	cfg := model.DefaultFilterConfig()
	cfg.Category = string(types.CapMid)
	view := svc.View(context.Background(), cfg)

	require.Len(t, view.Tokens, 1)
	assert.Equal(t, "mid", view.Tokens[0].ID)
	assert.Equal(t, 1, view.Stats.TotalTokens, "stats must be computed over the filtered set")
	assert.Len(t, view.Gainers, 1)
}

func TestTokenDetail_CachesPerID(t *testing.T) {
	f := &stubFetcher{detail: &model.TokenDetail{ID: "a", Name: "Alpha"}}
	svc := newTestService(f)
	ctx := context.Background()

	require.NotNil(t, svc.TokenDetail(ctx, "a"))

	// A later failure is masked by the cached entry
	f.detail = nil
	assert.NotNil(t, svc.TokenDetail(ctx, "a"))
	assert.Nil(t, svc.TokenDetail(ctx, "other"), "different id must not hit the cached entry")
}

func TestTokenDetail_DoesNotCacheFailures(t *testing.T) {
	f := &stubFetcher{}
	svc := newTestService(f)
	ctx := context.Background()

	require.Nil(t, svc.TokenDetail(ctx, "a"))

	f.detail = &model.TokenDetail{ID: "a"}
	assert.NotNil(t, svc.TokenDetail(ctx, "a"), "failure must not be memoized")
}

func TestTokenHistory_CachesPerRange(t *testing.T) {
	f := &stubFetcher{history: []model.PricePoint{{Timestamp: 1, Price: 2}}}
	svc := newTestService(f)
	ctx := context.Background()

	require.Len(t, svc.TokenHistory(ctx, "a", 7), 1)

	f.history = nil
	assert.Len(t, svc.TokenHistory(ctx, "a", 7), 1, "same id and range should hit the cache")
	assert.Empty(t, svc.TokenHistory(ctx, "a", 30), "different range must fetch anew")
}

func TestResetGuard(t *testing.T) {
	f := &stubFetcher{tokens: []model.TokenRecord{record("a", 5e9, 1)}}
	svc := newTestService(f)
	ctx := context.Background()

	svc.Tokens(ctx)
	f.tokens = nil
	svc.Refresh(ctx)
	require.Equal(t, guard.StateOpen, svc.GuardState())

	svc.ResetGuard()
	assert.Equal(t, guard.StateClosed, svc.GuardState())
}
