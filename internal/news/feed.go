// Package news provides the simulated AI-crypto news feed and its sentiment
// analysis. The feed itself is synthetic (there is no licensed news source
// behind it), but the sentiment summary is real computation over whatever
// articles it is given.
package news

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// Article is one news feed entry.
type Article struct {
	Headline      string    `json:"headline"`
	Source        string    `json:"source"`
	Date          time.Time `json:"date"`
	Sentiment     float64   `json:"sentiment"`
	Snippet       string    `json:"snippet"`
	RelatedTokens []string  `json:"related_tokens"`
	URL           string    `json:"url"`
}

var sources = []string{
	"https://www.coindesk.com/tag/artificial-intelligence/",
	"https://cointelegraph.com/tags/artificial-intelligence",
	"https://decrypt.co/news",
	"https://www.theblock.co/category/ai",
}

var aiTopics = []string{
	"GPT Token", "AI Infrastructure", "Machine Learning Network",
	"Neural Protocol", "Deep Learning Chain", "AI Governance",
	"LLM Token", "Compute Network", "AI Data Protocol",
}

var cryptoTopics = []string{
	"Market Analysis", "DeFi Protocol", "Layer-2", "Web3",
	"Exchange Listing", "Governance", "Protocol Upgrade",
}

var headlineTemplates = []string{
	"%s Partners with %s Platform to Enhance AI Capabilities",
	"New %s Token Surges After Announcing %s Integration",
	"%s Protocol Releases Roadmap for %s Features",
	"Investors Rally Behind %s Following Successful %s Implementation",
	"Researchers Develop Novel %s Solution for %s Challenges",
	"%s Foundation Secures $25M Funding to Advance %s Development",
	"Major Exchange Lists %s Token Following %s Breakthrough",
	"%s Whitepaper Reveals Revolutionary Approach to %s",
}

var positiveWords = []string{"surge", "rally", "success", "advance", "enhance", "revolutionary", "breakthrough"}
var negativeWords = []string{"challenge", "issue", "problem", "concern", "risk", "decline", "crash"}

// tokenHints maps headline keywords to the tokens they tend to mention.
var tokenHints = map[string][]string{
	"GPT":            {"GPT Finance"},
	"Neural":         {"Neural Network", "SingularityNET"},
	"Deep":           {"DeepBrain Chain"},
	"Data":           {"Ocean Protocol"},
	"Learning":       {"Fetch.ai"},
	"Infrastructure": {"Render Token", "Akash Network"},
	"Compute":        {"Render Token", "Akash Network"},
}

var defaultTokens = []string{"SingularityNET", "Fetch.ai", "Ocean Protocol"}

// Feed generates n simulated articles dated within the last 30 days, most
// recent first. Sentiment is derived from headline keywords plus noise,
// clipped to [-1, 1].
func Feed(n int) []Article {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	articles := make([]Article, 0, n)
	for i := 0; i < n; i++ {
		ai := aiTopics[rng.Intn(len(aiTopics))]
		crypto := cryptoTopics[rng.Intn(len(cryptoTopics))]
		headline := fmt.Sprintf(headlineTemplates[rng.Intn(len(headlineTemplates))], ai, crypto)

		date := now.Add(-time.Duration(rng.Intn(30*24*60)) * time.Minute)

		articles = append(articles, Article{
			Headline:      headline,
			Source:        sources[rng.Intn(len(sources))],
			Date:          date,
			Sentiment:     scoreHeadline(headline, rng),
			Snippet:       snippetFor(ai, crypto),
			RelatedTokens: relatedTokens(ai, crypto),
			URL:           urlFor(ai, crypto),
		})
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})
	return articles
}

// scoreHeadline does keyword-based sentiment scoring with random jitter.
func scoreHeadline(headline string, rng *rand.Rand) float64 {
	lower := strings.ToLower(headline)
	score := 0.0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score += 0.1 + rng.Float64()*0.2
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score -= 0.1 + rng.Float64()*0.2
		}
	}
	score += rng.Float64()*0.2 - 0.1

	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

func snippetFor(aiTopic, cryptoTopic string) string {
	return fmt.Sprintf("The %s project has announced a new development related to %s, "+
		"which could significantly impact the AI token ecosystem.", aiTopic, cryptoTopic)
}

func relatedTokens(aiTopic, cryptoTopic string) []string {
	var tokens []string
	for hint, names := range tokenHints {
		if strings.Contains(aiTopic, hint) || strings.Contains(cryptoTopic, hint) {
			tokens = append(tokens, names...)
		}
	}
	if len(tokens) == 0 {
		tokens = append(tokens, defaultTokens...)
	}
	sort.Strings(tokens)
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	return tokens
}

func urlFor(aiTopic, cryptoTopic string) string {
	slug := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
	}
	return fmt.Sprintf("https://example.com/news/%s-%s", slug(aiTopic), slug(cryptoTopic))
}
