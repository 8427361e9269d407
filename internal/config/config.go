// Package config provides configuration loading and management for the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	// Demo serves seeded synthetic data instead of calling the upstream API.
	// Useful for development and demos without burning rate-limit quota.
	Demo bool `yaml:"demo"`

	CoinGecko struct {
		BaseURL string `yaml:"base_url"`
		// APIKey enables the elevated rate-limit tier. Absence is not an
		// error, it just means unauthenticated access with lower limits.
		APIKey string `yaml:"api_key"`
		// MinRequestInterval is the mandatory pause between consecutive
		// upstream calls. Dropping below it gets the client throttled.
		MinRequestInterval time.Duration `yaml:"min_request_interval"`
		RequestTimeout     time.Duration `yaml:"request_timeout"`
		PageSize           int           `yaml:"page_size"`
		SearchBatchSize    int           `yaml:"search_batch_size"`
	} `yaml:"coingecko"`

	Cache struct {
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"cache"`

	Guard struct {
		// MaxShrinkRatio trips the snapshot guard when a refresh loses more
		// than this fraction of tokens versus the last good snapshot.
		MaxShrinkRatio float64       `yaml:"max_shrink_ratio"`
		Cooldown       time.Duration `yaml:"cooldown"`
	} `yaml:"guard"`

	RateLimit struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	Refresh struct {
		// Cron enables background snapshot refresh when non-empty,
		// e.g. "@every 10m". Manual refresh stays available either way.
		Cron string `yaml:"cron"`
	} `yaml:"refresh"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	OtelEndpoint string `yaml:"otel_endpoint"`
}

// Load reads config from a YAML file (if present), then applies environment
// variable overrides, then fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DEMO_MODE"); v == "true" || v == "1" {
		cfg.Demo = true
	}
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.CoinGecko.BaseURL = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.CoinGecko.APIKey = v
	}
	if v := getEnvDuration("COINGECKO_MIN_REQUEST_INTERVAL"); v > 0 {
		cfg.CoinGecko.MinRequestInterval = v
	}
	if v := getEnvDuration("CACHE_TTL"); v > 0 {
		cfg.Cache.TTL = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Refresh.Cron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OtelEndpoint = v
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimit.RPS = f
		}
	}

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.CoinGecko.BaseURL == "" {
		cfg.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if cfg.CoinGecko.MinRequestInterval == 0 {
		cfg.CoinGecko.MinRequestInterval = time.Second
	}
	if cfg.CoinGecko.RequestTimeout == 0 {
		cfg.CoinGecko.RequestTimeout = 10 * time.Second
	}
	if cfg.CoinGecko.PageSize == 0 {
		cfg.CoinGecko.PageSize = 250
	}
	if cfg.CoinGecko.SearchBatchSize == 0 {
		cfg.CoinGecko.SearchBatchSize = 25
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}
	if cfg.Guard.MaxShrinkRatio == 0 {
		cfg.Guard.MaxShrinkRatio = 0.8
	}
	if cfg.Guard.Cooldown == 0 {
		cfg.Guard.Cooldown = 5 * time.Minute
	}
	if cfg.RateLimit.RPS == 0 {
		cfg.RateLimit.RPS = 10
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 20
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if c.CoinGecko.BaseURL == "" {
		return fmt.Errorf("coingecko.base_url is required")
	}
	if c.CoinGecko.MinRequestInterval < 0 {
		return fmt.Errorf("coingecko.min_request_interval must not be negative")
	}
	if c.Guard.MaxShrinkRatio < 0 || c.Guard.MaxShrinkRatio > 1 {
		return fmt.Errorf("guard.max_shrink_ratio must be in [0, 1]")
	}
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate_limit.rps must be positive")
	}
	return nil
}

func getEnvDuration(key string) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 0
}
