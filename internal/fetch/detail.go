package fetch

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/yourorg/ai-analytics-hub/internal/classify"
	"github.com/yourorg/ai-analytics-hub/internal/model"
)

// historyIntervalThreshold is the day range above which the upstream service
// only serves daily resolution.
const historyIntervalThreshold = 30

// coinResponse mirrors the /coins/{id} payload, limited to the fields we keep.
type coinResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Categories  []string `json:"categories"`
	Description struct {
		EN string `json:"en"`
	} `json:"description"`
	Links struct {
		Homepage []string `json:"homepage"`
	} `json:"links"`
	Image struct {
		Large string `json:"large"`
	} `json:"image"`
	MarketData struct {
		CurrentPrice      map[string]float64 `json:"current_price"`
		MarketCap         map[string]float64 `json:"market_cap"`
		MarketCapRank     int                `json:"market_cap_rank"`
		TotalVolume       map[string]float64 `json:"total_volume"`
		High24h           map[string]float64 `json:"high_24h"`
		Low24h            map[string]float64 `json:"low_24h"`
		PriceChange24h    *float64           `json:"price_change_percentage_24h"`
		PriceChange7d     *float64           `json:"price_change_percentage_7d"`
		CirculatingSupply float64            `json:"circulating_supply"`
		TotalSupply       float64            `json:"total_supply"`
		ATH               map[string]float64 `json:"ath"`
		ATHDate           map[string]string  `json:"ath_date"`
	} `json:"market_data"`
	CommunityData struct {
		TwitterFollowers  int `json:"twitter_followers"`
		RedditSubscribers int `json:"reddit_subscribers"`
		TelegramUsers     int `json:"telegram_channel_user_count"`
	} `json:"community_data"`
}

// FetchTokenDetail performs the single-token deep fetch. On failure it
// degrades to nil so the caller can render an empty state.
func (c *CoinGeckoClient) FetchTokenDetail(ctx context.Context, id string) *model.TokenDetail {
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("market_data", "true")
	params.Set("community_data", "true")
	params.Set("developer_data", "false")

	var resp coinResponse
	if err := c.getJSON(ctx, "/coins/"+url.PathEscape(id), params, &resp); err != nil {
		c.logger.Warnf("Detail fetch for %q failed: %v", id, err)
		return nil
	}

	homepage := ""
	if len(resp.Links.Homepage) > 0 {
		homepage = resp.Links.Homepage[0]
	}

	return &model.TokenDetail{
		ID:                resp.ID,
		Name:              resp.Name,
		Symbol:            strings.ToUpper(resp.Symbol),
		Description:       resp.Description.EN,
		Categories:        resp.Categories,
		Homepage:          homepage,
		Image:             resp.Image.Large,
		Price:             resp.MarketData.CurrentPrice["usd"],
		MarketCap:         resp.MarketData.MarketCap["usd"],
		MarketCapRank:     resp.MarketData.MarketCapRank,
		Volume24h:         resp.MarketData.TotalVolume["usd"],
		High24h:           resp.MarketData.High24h["usd"],
		Low24h:            resp.MarketData.Low24h["usd"],
		PriceChange24h:    resp.MarketData.PriceChange24h,
		PriceChange7d:     resp.MarketData.PriceChange7d,
		CirculatingSupply: resp.MarketData.CirculatingSupply,
		TotalSupply:       resp.MarketData.TotalSupply,
		ATH:               resp.MarketData.ATH["usd"],
		ATHDate:           resp.MarketData.ATHDate["usd"],
		TwitterFollowers:  resp.CommunityData.TwitterFollowers,
		RedditSubscribers: resp.CommunityData.RedditSubscribers,
		TelegramUsers:     resp.CommunityData.TelegramUsers,
	}
}

// FetchTokenHistory retrieves the historical market series for a token.
// Interval resolution follows the upstream density limit: daily beyond 30
// days, hourly otherwise. Failures degrade to an empty series.
func (c *CoinGeckoClient) FetchTokenHistory(ctx context.Context, id string, days int) []model.PricePoint {
	interval := "hourly"
	if days > historyIntervalThreshold {
		interval = "daily"
	}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("days", strconv.Itoa(days))
	params.Set("interval", interval)

	var resp struct {
		Prices       [][2]float64 `json:"prices"`
		MarketCaps   [][2]float64 `json:"market_caps"`
		TotalVolumes [][2]float64 `json:"total_volumes"`
	}
	if err := c.getJSON(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", params, &resp); err != nil {
		c.logger.Warnf("History fetch for %q failed: %v", id, err)
		return []model.PricePoint{}
	}

	points := make([]model.PricePoint, 0, len(resp.Prices))
	for i, p := range resp.Prices {
		point := model.PricePoint{
			Timestamp: int64(p[0]),
			Price:     p[1],
		}
		// The three series share timestamps; guard against ragged payloads anyway
		if i < len(resp.MarketCaps) {
			point.MarketCap = classify.Clamp(&resp.MarketCaps[i][1])
		}
		if i < len(resp.TotalVolumes) {
			point.Volume = classify.Clamp(&resp.TotalVolumes[i][1])
		}
		points = append(points, point)
	}
	return points
}
