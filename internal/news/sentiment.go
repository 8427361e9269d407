package news

import (
	"sort"
)

// neutralBand is the dead zone around zero: articles inside it count as neutral.
const neutralBand = 0.1

// DailySentiment is the average sentiment of one calendar day.
type DailySentiment struct {
	Date      string  `json:"date"` // "2006-01-02"
	Sentiment float64 `json:"sentiment"`
}

// TokenMention counts how often a token shows up in related-token lists.
type TokenMention struct {
	Token    string `json:"token"`
	Mentions int    `json:"mentions"`
}

// Summary aggregates a news feed into display-ready sentiment statistics.
type Summary struct {
	AvgSentiment    float64          `json:"avg_sentiment"`
	PositiveCount   int              `json:"positive_news_count"`
	NegativeCount   int              `json:"negative_news_count"`
	NeutralCount    int              `json:"neutral_news_count"`
	SentimentByDate []DailySentiment `json:"sentiment_by_date"`
	TrendingTokens  []TokenMention   `json:"trending_tokens"`
}

// Summarize computes sentiment statistics over a feed. An empty feed produces
// a zero-valued summary, never an error.
func Summarize(articles []Article) Summary {
	summary := Summary{
		SentimentByDate: []DailySentiment{},
		TrendingTokens:  []TokenMention{},
	}
	if len(articles) == 0 {
		return summary
	}

	var total float64
	daySums := map[string]float64{}
	dayCounts := map[string]int{}
	mentions := map[string]int{}

	for _, a := range articles {
		total += a.Sentiment

		switch {
		case a.Sentiment > neutralBand:
			summary.PositiveCount++
		case a.Sentiment < -neutralBand:
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}

		day := a.Date.Format("2006-01-02")
		daySums[day] += a.Sentiment
		dayCounts[day]++

		for _, token := range a.RelatedTokens {
			mentions[token]++
		}
	}

	summary.AvgSentiment = total / float64(len(articles))

	for day, sum := range daySums {
		summary.SentimentByDate = append(summary.SentimentByDate, DailySentiment{
			Date:      day,
			Sentiment: sum / float64(dayCounts[day]),
		})
	}
	sort.Slice(summary.SentimentByDate, func(i, j int) bool {
		return summary.SentimentByDate[i].Date < summary.SentimentByDate[j].Date
	})

	for token, count := range mentions {
		summary.TrendingTokens = append(summary.TrendingTokens, TokenMention{Token: token, Mentions: count})
	}
	// Most-mentioned first, name as tie-break so output is deterministic
	sort.Slice(summary.TrendingTokens, func(i, j int) bool {
		if summary.TrendingTokens[i].Mentions != summary.TrendingTokens[j].Mentions {
			return summary.TrendingTokens[i].Mentions > summary.TrendingTokens[j].Mentions
		}
		return summary.TrendingTokens[i].Token < summary.TrendingTokens[j].Token
	})
	if len(summary.TrendingTokens) > 5 {
		summary.TrendingTokens = summary.TrendingTokens[:5]
	}

	return summary
}
