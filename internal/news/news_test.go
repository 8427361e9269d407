package news

import (
	"math"
	"testing"
	"time"
)

func article(sentiment float64, date string, tokens ...string) Article {
	d, _ := time.Parse("2006-01-02", date)
	return Article{Sentiment: sentiment, Date: d, RelatedTokens: tokens}
}

func TestFeed(t *testing.T) {
	articles := Feed(20)

	if len(articles) != 20 {
		t.Fatalf("expected 20 articles, got %d", len(articles))
	}

	cutoff := time.Now().Add(-31 * 24 * time.Hour)
	for i, a := range articles {
		if a.Headline == "" || a.Source == "" || a.URL == "" {
			t.Errorf("article %d has empty fields: %+v", i, a)
		}
		if a.Sentiment < -1 || a.Sentiment > 1 {
			t.Errorf("article %d sentiment %v outside [-1, 1]", i, a.Sentiment)
		}
		if len(a.RelatedTokens) == 0 || len(a.RelatedTokens) > 3 {
			t.Errorf("article %d has %d related tokens, want 1-3", i, len(a.RelatedTokens))
		}
		if a.Date.Before(cutoff) {
			t.Errorf("article %d dated %v, older than 30 days", i, a.Date)
		}
		if i > 0 && a.Date.After(articles[i-1].Date) {
			t.Errorf("articles not sorted most recent first at index %d", i)
		}
	}
}

func TestSummarize(t *testing.T) {
	articles := []Article{
		article(0.8, "2026-08-01", "Fetch.ai", "SingularityNET"),
		article(0.4, "2026-08-01", "Fetch.ai"),
		article(-0.5, "2026-08-02", "Ocean Protocol"),
		article(0.05, "2026-08-02", "Fetch.ai"),
	}

	s := Summarize(articles)

	if want := (0.8 + 0.4 - 0.5 + 0.05) / 4; math.Abs(s.AvgSentiment-want) > 1e-9 {
		t.Errorf("AvgSentiment = %v, want %v", s.AvgSentiment, want)
	}
	if s.PositiveCount != 2 || s.NegativeCount != 1 || s.NeutralCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", s.PositiveCount, s.NegativeCount, s.NeutralCount)
	}

	if len(s.SentimentByDate) != 2 {
		t.Fatalf("expected 2 daily entries, got %d", len(s.SentimentByDate))
	}
	if s.SentimentByDate[0].Date != "2026-08-01" || s.SentimentByDate[1].Date != "2026-08-02" {
		t.Errorf("daily entries not date-ascending: %+v", s.SentimentByDate)
	}
	if want := (0.8 + 0.4) / 2; math.Abs(s.SentimentByDate[0].Sentiment-want) > 1e-9 {
		t.Errorf("day 1 sentiment = %v, want %v", s.SentimentByDate[0].Sentiment, want)
	}

	if len(s.TrendingTokens) != 3 {
		t.Fatalf("expected 3 trending tokens, got %d", len(s.TrendingTokens))
	}
	if s.TrendingTokens[0].Token != "Fetch.ai" || s.TrendingTokens[0].Mentions != 3 {
		t.Errorf("TrendingTokens[0] = %+v, want Fetch.ai with 3 mentions", s.TrendingTokens[0])
	}
	// One mention each: alphabetical tie-break
	if s.TrendingTokens[1].Token != "Ocean Protocol" || s.TrendingTokens[2].Token != "SingularityNET" {
		t.Errorf("tie-break order wrong: %+v", s.TrendingTokens[1:])
	}
}

func TestSummarize_NeutralBand(t *testing.T) {
	tests := []struct {
		sentiment float64
		wantPos   int
		wantNeg   int
		wantNeu   int
	}{
		{0.11, 1, 0, 0},
		{0.1, 0, 0, 1},
		{-0.1, 0, 0, 1},
		{-0.11, 0, 1, 0},
		{0, 0, 0, 1},
	}
	for _, tt := range tests {
		s := Summarize([]Article{article(tt.sentiment, "2026-08-01")})
		if s.PositiveCount != tt.wantPos || s.NegativeCount != tt.wantNeg || s.NeutralCount != tt.wantNeu {
			t.Errorf("sentiment %v: counts = %d/%d/%d, want %d/%d/%d",
				tt.sentiment, s.PositiveCount, s.NegativeCount, s.NeutralCount,
				tt.wantPos, tt.wantNeg, tt.wantNeu)
		}
	}
}

func TestSummarize_TrendingCappedAtFive(t *testing.T) {
	articles := []Article{
		article(0.5, "2026-08-01", "a", "b", "c"),
		article(0.5, "2026-08-01", "d", "e", "f"),
		article(0.5, "2026-08-01", "g"),
	}

	if s := Summarize(articles); len(s.TrendingTokens) != 5 {
		t.Errorf("expected trending list capped at 5, got %d", len(s.TrendingTokens))
	}
}

func TestSummarize_EmptyFeed(t *testing.T) {
	s := Summarize(nil)

	if s.AvgSentiment != 0 || s.PositiveCount != 0 || s.NegativeCount != 0 || s.NeutralCount != 0 {
		t.Errorf("empty feed should zero every count, got %+v", s)
	}
	if s.SentimentByDate == nil || s.TrendingTokens == nil {
		t.Error("empty feed should produce empty, non-nil slices")
	}
}
