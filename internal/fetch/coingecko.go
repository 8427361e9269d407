package fetch

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yourorg/ai-analytics-hub/internal/classify"
	"github.com/yourorg/ai-analytics-hub/internal/config"
	"github.com/yourorg/ai-analytics-hub/internal/model"
	"golang.org/x/time/rate"
)

// categoryKeywords select which upstream categories count as AI-related,
// matched case-insensitively as substrings of the category name.
var categoryKeywords = []string{"ai", "artificial intelligence"}

// searchTerms are the free-text queries run in addition to category lookups.
var searchTerms = []string{"ai", "artificial intelligence", "machine learning", "neural", "gpt"}

// CoinGeckoClient fetches token market data from the CoinGecko v3 API.
type CoinGeckoClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	pacer      *rate.Limiter
	pageSize   int
	batchSize  int
	logger     *logrus.Entry
}

// NewCoinGeckoClient creates a client from configuration. A missing API key
// falls back to unauthenticated access with lower rate limits.
func NewCoinGeckoClient(cfg *config.Config) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL:    cfg.CoinGecko.BaseURL,
		apiKey:     cfg.CoinGecko.APIKey,
		httpClient: newRetryClient(cfg.CoinGecko.RequestTimeout),
		pacer:      newPacer(cfg.CoinGecko.MinRequestInterval),
		pageSize:   cfg.CoinGecko.PageSize,
		batchSize:  cfg.CoinGecko.SearchBatchSize,
		logger:     logrus.WithField("component", "coingecko"),
	}
}

// marketRow mirrors one /coins/markets entry. Numeric fields are pointers
// because the upstream data is known to carry nulls.
type marketRow struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Symbol         string   `json:"symbol"`
	CurrentPrice   *float64 `json:"current_price"`
	MarketCap      *float64 `json:"market_cap"`
	TotalVolume    *float64 `json:"total_volume"`
	PriceChange24h *float64 `json:"price_change_percentage_24h"`
	PriceChange7d  *float64 `json:"price_change_percentage_7d_in_currency"`
	Image          string   `json:"image"`
	LastUpdated    string   `json:"last_updated"`
}

// toRecord normalizes a raw row into a TokenRecord: nulls and negatives are
// clamped to 0, price changes keep their null-ness, and the market cap bucket
// is assigned here so downstream stages only see the cached label.
func (r marketRow) toRecord() model.TokenRecord {
	marketCap := classify.Clamp(r.MarketCap)
	return model.TokenRecord{
		ID:                r.ID,
		Name:              r.Name,
		Symbol:            strings.ToUpper(r.Symbol),
		Price:             classify.Clamp(r.CurrentPrice),
		MarketCap:         marketCap,
		MarketCapCategory: classify.Classify(marketCap),
		Volume24h:         classify.Clamp(r.TotalVolume),
		PriceChange24h:    r.PriceChange24h,
		PriceChange7d:     r.PriceChange7d,
		Image:             r.Image,
		LastUpdated:       r.LastUpdated,
	}
}

// FetchAITokens produces the deduplicated AI token snapshot by merging two
// query strategies: every AI-flavored category, then a free-text search per
// keyword term. Individual upstream failures degrade to a smaller result set;
// a complete failure degrades to an empty one. Calls run sequentially through
// the pacer.
func (c *CoinGeckoClient) FetchAITokens(ctx context.Context) []model.TokenRecord {
	var rows []marketRow

	for _, category := range c.aiCategories(ctx) {
		page, err := c.marketsByCategory(ctx, category)
		if err != nil {
			c.logger.Warnf("Category %q lookup failed: %v", category, err)
			continue
		}
		rows = append(rows, page...)
	}

	for _, term := range searchTerms {
		ids, err := c.searchIDs(ctx, term)
		if err != nil {
			c.logger.Warnf("Search %q failed: %v", term, err)
			continue
		}
		if len(ids) == 0 {
			continue
		}
		// Upstream caps the ids parameter length, so take the top batch only
		if len(ids) > c.batchSize {
			ids = ids[:c.batchSize]
		}
		page, err := c.marketsByIDs(ctx, ids)
		if err != nil {
			c.logger.Warnf("Market lookup for search %q failed: %v", term, err)
			continue
		}
		rows = append(rows, page...)
	}

	tokens := dedupe(rows)
	c.logger.WithFields(logrus.Fields{
		"raw":    len(rows),
		"unique": len(tokens),
	}).Debug("Fetched AI token snapshot")

	return tokens
}

// aiCategories lists all upstream categories whose name matches the AI keyword set.
func (c *CoinGeckoClient) aiCategories(ctx context.Context) []string {
	var categories []struct {
		CategoryID string `json:"category_id"`
		Name       string `json:"name"`
	}
	if err := c.getJSON(ctx, "/coins/categories/list", nil, &categories); err != nil {
		c.logger.Warnf("Category listing failed: %v", err)
		return nil
	}

	var matched []string
	for _, cat := range categories {
		name := strings.ToLower(cat.Name)
		for _, kw := range categoryKeywords {
			if strings.Contains(name, kw) {
				matched = append(matched, cat.CategoryID)
				break
			}
		}
	}
	return matched
}

// marketsByCategory fetches one page of tokens for a category, largest caps first.
func (c *CoinGeckoClient) marketsByCategory(ctx context.Context, category string) ([]marketRow, error) {
	params := c.marketParams()
	params.Set("category", category)

	var rows []marketRow
	if err := c.getJSON(ctx, "/coins/markets", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// marketsByIDs fetches market data for an explicit token ID list.
func (c *CoinGeckoClient) marketsByIDs(ctx context.Context, ids []string) ([]marketRow, error) {
	params := c.marketParams()
	params.Set("ids", strings.Join(ids, ","))

	var rows []marketRow
	if err := c.getJSON(ctx, "/coins/markets", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *CoinGeckoClient) marketParams() url.Values {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(c.pageSize))
	params.Set("page", "1")
	params.Set("price_change_percentage", "24h,7d")
	return params
}

// searchIDs runs a free-text search and returns the candidate coin IDs.
func (c *CoinGeckoClient) searchIDs(ctx context.Context, term string) ([]string, error) {
	params := url.Values{}
	params.Set("query", term)

	var result struct {
		Coins []struct {
			ID string `json:"id"`
		} `json:"coins"`
	}
	if err := c.getJSON(ctx, "/search", params, &result); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Coins))
	for _, coin := range result.Coins {
		ids = append(ids, coin.ID)
	}
	return ids, nil
}

// dedupe merges raw rows into records, keeping the first occurrence of each ID.
func dedupe(rows []marketRow) []model.TokenRecord {
	seen := make(map[string]struct{}, len(rows))
	tokens := make([]model.TokenRecord, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.ID]; ok {
			continue
		}
		seen[row.ID] = struct{}{}
		tokens = append(tokens, row.toRecord())
	}
	return tokens
}
