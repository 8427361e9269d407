package guard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/ai-analytics-hub/internal/model"
)

func snapshot(n int) []model.TokenRecord {
	tokens := make([]model.TokenRecord, n)
	for i := range tokens {
		tokens[i] = model.TokenRecord{ID: string(rune('a' + i))}
	}
	return tokens
}

func TestSnapshotGuard_AcceptsHealthySnapshots(t *testing.T) {
	g := New(0.8, time.Minute)
	assert.Equal(t, StateClosed, g.GetState(), "guard should start closed")

	err := g.Check(snapshot(10))
	assert.NoError(t, err, "healthy snapshot should be accepted")
	assert.Equal(t, StateClosed, g.GetState())
	assert.Len(t, g.LastGood(), 10, "accepted snapshot becomes last good")
}

func TestSnapshotGuard_EmptyBeforeAnyData(t *testing.T) {
	g := New(0.8, time.Minute)

	err := g.Check(nil)
	assert.Error(t, err, "empty snapshot with no history should be rejected")
	assert.Equal(t, StateClosed, g.GetState(), "no history means no trip")
	assert.Nil(t, g.LastGood())
}

func TestSnapshotGuard_TripsOnEmptyRefresh(t *testing.T) {
	g := New(0.8, time.Minute)
	require.NoError(t, g.Check(snapshot(10)))

	err := g.Check(nil)
	assert.Error(t, err, "empty refresh after good data should trip")
	assert.Equal(t, StateOpen, g.GetState())
	assert.Len(t, g.LastGood(), 10, "last good snapshot survives the trip")
}

func TestSnapshotGuard_TripsOnShrink(t *testing.T) {
	g := New(0.5, time.Minute)
	require.NoError(t, g.Check(snapshot(10)))

	err := g.Check(snapshot(4)) // 60% shrink, above the 50% threshold
	assert.Error(t, err, "drastic shrink should trip")
	assert.Contains(t, err.Error(), "shrank")
	assert.Equal(t, StateOpen, g.GetState())
	assert.Len(t, g.LastGood(), 10, "shrunken snapshot must not replace last good")
}

func TestSnapshotGuard_ToleratesModerateShrink(t *testing.T) {
	g := New(0.5, time.Minute)
	require.NoError(t, g.Check(snapshot(10)))

	err := g.Check(snapshot(7)) // 30% shrink, below the threshold
	assert.NoError(t, err, "shrink within tolerance should be accepted")
	assert.Len(t, g.LastGood(), 7)
}

func TestSnapshotGuard_RejectsWhileOpen(t *testing.T) {
	g := New(0.5, time.Hour)
	require.NoError(t, g.Check(snapshot(10)))
	require.Error(t, g.Check(nil))

	err := g.Check(snapshot(10))
	assert.Error(t, err, "open guard should reject refreshes until cooldown elapses")
	assert.Contains(t, err.Error(), "open")
}

func TestSnapshotGuard_RecoversThroughHalfOpen(t *testing.T) {
	g := New(0.5, 10*time.Millisecond)
	require.NoError(t, g.Check(snapshot(10)))
	require.Error(t, g.Check(nil))
	require.Equal(t, StateOpen, g.GetState())

	time.Sleep(20 * time.Millisecond)

	// First success after cooldown moves the guard to half-open
	require.NoError(t, g.Check(snapshot(10)))
	assert.Equal(t, StateHalfOpen, g.GetState())

	// Two more successes reach the threshold and close it
	require.NoError(t, g.Check(snapshot(10)))
	require.NoError(t, g.Check(snapshot(11)))
	assert.Equal(t, StateClosed, g.GetState(), "guard should close after enough successes")
}

func TestSnapshotGuard_ManualReset(t *testing.T) {
	g := New(0.5, time.Hour)
	require.NoError(t, g.Check(snapshot(10)))
	require.Error(t, g.Check(nil))
	require.Equal(t, StateOpen, g.GetState())

	g.Reset()
	assert.Equal(t, StateClosed, g.GetState())
	assert.NoError(t, g.Check(snapshot(10)), "reset guard should accept snapshots again")
}

func TestSnapshotGuard_TripCallback(t *testing.T) {
	var (
		mu     sync.Mutex
		reason string
	)
	done := make(chan struct{})

	g := New(0.5, time.Minute).WithTripCallback(func(r string) {
		mu.Lock()
		reason = r
		mu.Unlock()
		close(done)
	})
	require.NoError(t, g.Check(snapshot(10)))
	require.Error(t, g.Check(nil))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("trip callback was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, reason, "empty")
}

func TestSnapshotGuard_LastGoodReturnsCopy(t *testing.T) {
	g := New(0.5, time.Minute)
	require.NoError(t, g.Check(snapshot(3)))

	got := g.LastGood()
	got[0].ID = "mutated"

	assert.NotEqual(t, "mutated", g.LastGood()[0].ID, "LastGood must return a defensive copy")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
}
