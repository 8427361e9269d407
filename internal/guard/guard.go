// Package guard protects the dashboard against anomalous snapshot refreshes.
//
// A refresh that comes back empty, or that loses most of the token universe
// compared with the last good snapshot, is more likely an upstream outage than
// a real market event. The guard follows the circuit breaker pattern: it trips
// on anomalies, serves the last good snapshot while open, and probes recovery
// through a half-open state after a cooldown.
package guard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourorg/ai-analytics-hub/internal/model"
)

// State represents the current state of the snapshot guard
type State int

// Guard states
const (
	StateClosed   State = iota // Normal operation
	StateOpen                  // Tripped, refreshed snapshots are rejected
	StateHalfOpen              // Testing if the upstream has recovered
)

// String returns the state label used on the status endpoint.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// SnapshotGuard validates refreshed snapshots and keeps the last good one as
// a fallback.
type SnapshotGuard struct {
	// MaxShrinkRatio: a snapshot losing more than this fraction of tokens
	// versus the last good one trips the guard
	maxShrinkRatio float64

	// Duration before an auto-recovery attempt
	cooldown time.Duration

	// Successful checks required in half-open state to close again
	successThreshold int

	mu           sync.RWMutex
	state        State
	lastTrip     time.Time
	successCount int
	lastGood     []model.TokenRecord

	// Event callback for monitoring/alerting
	onTrip func(reason string)
}

// New creates a SnapshotGuard with the given shrink threshold and cooldown.
func New(maxShrinkRatio float64, cooldown time.Duration) *SnapshotGuard {
	return &SnapshotGuard{
		maxShrinkRatio:   maxShrinkRatio,
		cooldown:         cooldown,
		successThreshold: 3,
	}
}

// WithTripCallback sets a callback invoked whenever the guard trips.
func (g *SnapshotGuard) WithTripCallback(callback func(reason string)) *SnapshotGuard {
	g.onTrip = callback
	return g
}

// Check evaluates a refreshed snapshot. A nil error means the snapshot was
// accepted and recorded as the new last-good state. On error the caller should
// fall back to LastGood.
func (g *SnapshotGuard) Check(tokens []model.TokenRecord) error {
	g.mu.RLock()
	state := g.state
	lastTripTime := g.lastTrip
	g.mu.RUnlock()

	if state == StateOpen {
		if time.Since(lastTripTime) > g.cooldown {
			g.transitionToHalfOpen()
		} else {
			return errors.New("snapshot guard open: serving last good snapshot")
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if len(tokens) == 0 {
		// Only anomalous if we previously had data
		if len(g.lastGood) > 0 {
			reason := "refresh returned an empty snapshot"
			g.trip(reason)
			return errors.New(reason)
		}
		return errors.New("no snapshot data available yet")
	}

	if len(g.lastGood) > 0 {
		shrink := 1 - float64(len(tokens))/float64(len(g.lastGood))
		if shrink > g.maxShrinkRatio {
			reason := fmt.Sprintf("snapshot shrank %.0f%%: %d -> %d tokens",
				shrink*100, len(g.lastGood), len(tokens))
			g.trip(reason)
			return errors.New(reason)
		}
	}

	// Snapshot accepted
	g.lastGood = make([]model.TokenRecord, len(tokens))
	copy(g.lastGood, tokens)

	if g.state == StateHalfOpen {
		g.successCount++
		if g.successCount >= g.successThreshold {
			g.state = StateClosed
			g.successCount = 0
			logrus.Info("Snapshot guard closed: upstream has recovered")
		}
	}

	return nil
}

// GetState returns the current state of the guard.
func (g *SnapshotGuard) GetState() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Reset forcibly returns the guard to the closed state.
func (g *SnapshotGuard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateClosed
	g.successCount = 0
	logrus.Info("Snapshot guard manually reset to closed state")
}

// LastGood returns a copy of the most recent accepted snapshot, or nil if no
// snapshot has been accepted yet.
func (g *SnapshotGuard) LastGood() []model.TokenRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.lastGood) == 0 {
		return nil
	}
	out := make([]model.TokenRecord, len(g.lastGood))
	copy(out, g.lastGood)
	return out
}

func (g *SnapshotGuard) transitionToHalfOpen() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateOpen {
		g.state = StateHalfOpen
		g.successCount = 0
		logrus.Info("Snapshot guard half-open: testing upstream recovery")
	}
}

func (g *SnapshotGuard) trip(reason string) {
	g.state = StateOpen
	g.lastTrip = time.Now()
	logrus.Warnf("Snapshot guard tripped: %s", reason)

	if g.onTrip != nil {
		go g.onTrip(reason)
	}
}
