// Package main is the entry point for the AI Analytics Hub, a JSON API
// serving AI-related token market data, aggregates, and trends to the
// dashboard front end.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/yourorg/ai-analytics-hub/internal/cache"
	"github.com/yourorg/ai-analytics-hub/internal/config"
	"github.com/yourorg/ai-analytics-hub/internal/dashboard"
	"github.com/yourorg/ai-analytics-hub/internal/fetch"
	"github.com/yourorg/ai-analytics-hub/internal/guard"
	"github.com/yourorg/ai-analytics-hub/internal/mockdata"
	"github.com/yourorg/ai-analytics-hub/internal/model"
	"github.com/yourorg/ai-analytics-hub/internal/news"
	"github.com/yourorg/ai-analytics-hub/internal/otel"
	"golang.org/x/time/rate"
)

// startTime records when the service was initialized for uptime reporting
var startTime = time.Now()

// newsFeedSize is how many simulated articles one feed request carries
const newsFeedSize = 20

// launchFeedSize is how many synthetic launches the launch feed carries
const launchFeedSize = 25

// Server is the API server instance.
type Server struct {
	cfg     *config.Config
	service *dashboard.Service
	server  *http.Server
	cron    *cron.Cron
	limiter *rate.Limiter
	metrics *serverMetrics
}

// serverMetrics holds Prometheus metrics for the server
type serverMetrics struct {
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	snapshotTokens  prometheus.Gauge
	snapshotCap     prometheus.Gauge
	snapshotChange  prometheus.Gauge
	guardState      prometheus.Gauge
}

// registerMetrics sets up Prometheus metrics collection
func registerMetrics() *serverMetrics {
	m := &serverMetrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aihub_requests_total",
				Help: "Total number of API requests processed",
			},
			[]string{"endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aihub_request_duration_seconds",
				Help:    "Request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		snapshotTokens: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "aihub_snapshot_tokens",
				Help: "Number of tokens in the current snapshot",
			},
		),
		snapshotCap: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "aihub_snapshot_market_cap_usd",
				Help: "Total market cap of the current snapshot",
			},
		),
		snapshotChange: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "aihub_snapshot_avg_24h_change",
				Help: "Average 24h price change of the current snapshot",
			},
		),
		guardState: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "aihub_snapshot_guard_state",
				Help: "Snapshot guard state (0=closed, 1=open, 2=half-open)",
			},
		),
	}

	prometheus.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.snapshotTokens,
		m.snapshotCap,
		m.snapshotChange,
		m.guardState,
	)

	return m
}

// main is the entry point for the application
func main() {
	setupLogging()

	cfg, err := config.Load(getEnvOrDefault("CONFIG_PATH", "config.yaml"))
	if err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	shutdownTracer := otel.InitTracer(cfg.OtelEndpoint)
	defer shutdownTracer()

	server := NewServer(cfg)
	server.Start()
}

// setupLogging configures the logging for the application
func setupLogging() {
	switch strings.ToLower(os.Getenv("LOG_FORMAT")) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// NewServer wires the pipeline and the API surface together.
func NewServer(cfg *config.Config) *Server {
	var fetcher dashboard.Fetcher = fetch.NewCoinGeckoClient(cfg)
	if cfg.Demo {
		logrus.Warn("Demo mode: serving synthetic data, upstream API disabled")
		fetcher = demoFetcher{}
	}

	snapshotCache := cache.New(cfg.Cache.TTL)
	snapshotGuard := guard.New(cfg.Guard.MaxShrinkRatio, cfg.Guard.Cooldown).
		WithTripCallback(func(reason string) {
			logrus.Warnf("Snapshot guard tripped: %s", reason)
		})

	s := &Server{
		cfg:     cfg,
		service: dashboard.NewService(fetcher, snapshotCache, snapshotGuard),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
		metrics: registerMetrics(),
	}

	if cfg.Refresh.Cron != "" {
		s.cron = cron.New()
		_, err := s.cron.AddFunc(cfg.Refresh.Cron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			tokens := s.service.Refresh(ctx)
			s.observeSnapshot(ctx)
			logrus.Infof("Scheduled refresh complete: %d tokens", len(tokens))
		})
		if err != nil {
			logrus.Fatalf("Invalid refresh cron %q: %v", cfg.Refresh.Cron, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"port":      cfg.Server.Port,
		"cache_ttl": cfg.Cache.TTL,
		"pacing":    cfg.CoinGecko.MinRequestInterval,
		"cron":      cfg.Refresh.Cron,
		"api_key":   cfg.CoinGecko.APIKey != "",
	}).Info("Server initialized")

	return s
}

// Start begins the HTTP server and sets up graceful shutdown
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/dashboard", s.instrument("dashboard", s.handleDashboard))
	mux.HandleFunc("GET /api/tokens", s.instrument("tokens", s.handleTokens))
	mux.HandleFunc("GET /api/tokens/{id}", s.instrument("token_detail", s.handleTokenDetail))
	mux.HandleFunc("GET /api/tokens/{id}/history", s.instrument("token_history", s.handleTokenHistory))
	mux.HandleFunc("POST /api/refresh", s.instrument("refresh", s.handleRefresh))
	mux.HandleFunc("GET /api/agents", s.instrument("agents", s.handleAgents))
	mux.HandleFunc("GET /api/launches", s.instrument("launches", s.handleLaunches))
	mux.HandleFunc("GET /api/news", s.instrument("news", s.handleNews))
	mux.HandleFunc("/api/guard", s.instrument("guard", s.handleGuard))
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if s.cron != nil {
		s.cron.Start()
	}

	go func() {
		logrus.Infof("Server starting on port %s", s.cfg.Server.Port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Error starting server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Server shutting down...")
	if s.cron != nil {
		s.cron.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server shutdown failed: %v", err)
	}

	logrus.Info("Server stopped")
}

// instrument wraps a handler with rate limiting and Prometheus accounting.
func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.metrics.requestCounter.WithLabelValues(endpoint, "throttled").Inc()
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		start := time.Now()
		next(w, r)
		s.metrics.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		s.metrics.requestCounter.WithLabelValues(endpoint, "ok").Inc()
	}
}

// handleDashboard serves the full dashboard view for a filter configuration.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view := s.service.View(r.Context(), filterFromQuery(r))
	s.observeStats(view.Stats)
	writeJSON(w, http.StatusOK, view)
}

// handleTokens serves the filtered token collection only.
func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	view := s.service.View(r.Context(), filterFromQuery(r))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tokens": view.Tokens,
		"count":  len(view.Tokens),
	})
}

// handleTokenDetail serves the deep record for one token. Unavailable data is
// a 404 with an empty-state hint, not a 500: upstream failures are an expected
// condition.
func (s *Server) handleTokenDetail(w http.ResponseWriter, r *http.Request) {
	detail := s.service.TokenDetail(r.Context(), r.PathValue("id"))
	if detail == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "token data unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// handleTokenHistory serves the historical series for one token.
func (s *Server) handleTokenHistory(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", 7)
	if days < 1 {
		days = 7
	}
	points := s.service.TokenHistory(r.Context(), r.PathValue("id"), days)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":     r.PathValue("id"),
		"days":   days,
		"points": points,
	})
}

// handleRefresh purges the cache and rebuilds the snapshot.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	tokens := s.service.Refresh(r.Context())
	s.observeSnapshot(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"refreshed": true,
		"tokens":    len(tokens),
	})
}

// handleAgents serves the simulated AI agents catalog.
func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"agents":    mockdata.Agents(),
		"simulated": true,
	})
}

// handleLaunches serves the synthetic new-launch feed.
func (s *Server) handleLaunches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"launches":  mockdata.Launches(launchFeedSize),
		"simulated": true,
	})
}

// handleNews serves the simulated news feed plus its sentiment summary.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	feed := news.Feed(newsFeedSize)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"articles":  feed,
		"summary":   news.Summarize(feed),
		"simulated": true,
	})
}

// handleGuard allows viewing and resetting the snapshot guard.
func (s *Server) handleGuard(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"state": s.service.GuardState().String(),
	}

	if r.Method == http.MethodPost && r.URL.Query().Get("action") == "reset" {
		s.service.ResetGuard()
		response["state"] = s.service.GuardState().String()
		response["message"] = "Snapshot guard reset"
	}

	writeJSON(w, http.StatusOK, response)
}

// handleHealth is a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleStatus provides detailed service status information
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "operational",
		"uptime":         time.Since(startTime).String(),
		"version":        "1.0.0",
		"guard_state":    s.service.GuardState().String(),
		"cached_entries": s.service.CacheSize(),
		"configuration": map[string]interface{}{
			"cache_ttl":        s.cfg.Cache.TTL.String(),
			"request_interval": s.cfg.CoinGecko.MinRequestInterval.String(),
			"refresh_cron":     s.cfg.Refresh.Cron,
		},
	})
}

// observeSnapshot refreshes the snapshot gauges from the current full snapshot.
func (s *Server) observeSnapshot(ctx context.Context) {
	view := s.service.View(ctx, model.DefaultFilterConfig())
	s.observeStats(view.Stats)
}

func (s *Server) observeStats(stats model.MarketStats) {
	s.metrics.snapshotTokens.Set(float64(stats.TotalTokens))
	s.metrics.snapshotCap.Set(stats.TotalMarketCap)
	s.metrics.snapshotChange.Set(stats.Avg24hChange)
	s.metrics.guardState.Set(float64(s.service.GuardState()))
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Warnf("Error encoding response: %v", err)
	}
}
