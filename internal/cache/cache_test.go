package cache

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	tests := []struct {
		op   string
		args []string
		want string
	}{
		{"tokens", nil, "tokens"},
		{"detail", []string{"bittensor"}, "detail:bittensor"},
		{"history", []string{"bittensor", "30"}, "history:bittensor:30"},
	}
	for _, tt := range tests {
		if got := Key(tt.op, tt.args...); got != tt.want {
			t.Errorf("Key(%q, %v) = %q, want %q", tt.op, tt.args, got, tt.want)
		}
	}
}

func TestGetSet(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("tokens"); ok {
		t.Fatal("Get on empty cache should miss")
	}

	c.Set("tokens", 42)

	v, ok := c.Get("tokens")
	if !ok {
		t.Fatal("Get after Set should hit")
	}
	if v.(int) != 42 {
		t.Errorf("Get = %v, want 42", v)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(5 * time.Minute)
	c.now = func() time.Time { return now }

	c.Set("tokens", "fresh")

	now = now.Add(5 * time.Minute)
	if _, ok := c.Get("tokens"); !ok {
		t.Error("entry at exactly TTL should still be served")
	}

	now = now.Add(time.Second)
	if _, ok := c.Get("tokens"); ok {
		t.Error("entry past TTL should miss")
	}
}

func TestPurge(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	c.Purge()

	if c.Len() != 0 {
		t.Errorf("Len after Purge = %d, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("purged entry should miss")
	}
}

func TestDisabledCache(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		c := New(ttl)
		c.Set("tokens", 1)
		if _, ok := c.Get("tokens"); ok {
			t.Errorf("ttl=%v should disable caching", ttl)
		}
		if c.Len() != 0 {
			t.Errorf("ttl=%v Set should be a no-op, Len = %d", ttl, c.Len())
		}
	}
}
