package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/yourorg/ai-analytics-hub/internal/model"
	"github.com/yourorg/ai-analytics-hub/internal/types"
)

// Helper functions for environment variables and request parsing

// getEnvOrDefault returns the value of an environment variable or a default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// filterFromQuery builds a FilterConfig from request query parameters,
// falling back to the defaults for anything absent or unparseable.
// Invalid values are defensive no-ops, matching how the filter engine treats
// unknown sort keys.
func filterFromQuery(r *http.Request) model.FilterConfig {
	cfg := model.DefaultFilterConfig()
	q := r.URL.Query()

	if v := queryFloat(r, "market_cap_min", -1); v >= 0 {
		cfg.MarketCapMin = v
	}
	if v := queryFloat(r, "market_cap_max", -1); v >= 0 {
		cfg.MarketCapMax = v
	}
	if v := q.Get("category"); v != "" {
		cfg.Category = v
	}
	if v := q.Get("sort_by"); v != "" {
		cfg.SortBy = types.SortKey(v)
	}
	if v := q.Get("sort_order"); v == types.SortAsc || v == types.SortDesc {
		cfg.SortOrder = v
	}

	return cfg
}

// queryFloat parses a float query parameter or returns the default
func queryFloat(r *http.Request, key string, defaultValue float64) float64 {
	if value := r.URL.Query().Get(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// queryInt parses an integer query parameter or returns the default
func queryInt(r *http.Request, key string, defaultValue int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
