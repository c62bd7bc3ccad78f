package session

import (
	"testing"
	"time"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	s := NewStore(90 * time.Second)

	a := s.GetOrCreate("s1")
	a.Set("k", "v")

	b := s.GetOrCreate("s1")
	if b.Get("k") != "v" {
		t.Fatalf("expected scratch data to survive: got %q", b.Get("k"))
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", s.Len())
	}
}

func TestGetOrCreateTouchesExisting(t *testing.T) {
	s := NewStore(90 * time.Second)
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.GetOrCreate("s1")
	now = now.Add(60 * time.Second)
	s.GetOrCreate("s1")

	// Touched at t+60s, so at t+120s it is only 60s idle and survives.
	now = now.Add(60 * time.Second)
	if removed := s.SweepExpired(); removed != 0 {
		t.Fatalf("expected no eviction after touch, removed %d", removed)
	}
}

func TestSweepExpiredRemovesOnlyIdleSessions(t *testing.T) {
	s := NewStore(90 * time.Second)
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.GetOrCreate("stale")
	now = now.Add(91 * time.Second)
	s.GetOrCreate("fresh")

	if removed := s.SweepExpired(); removed != 1 {
		t.Fatalf("expected 1 eviction, got %d", removed)
	}
	if _, ok := s.Get("stale"); ok {
		t.Fatal("stale session should be gone")
	}
	if _, ok := s.Get("fresh"); !ok {
		t.Fatal("fresh session should survive")
	}
}

func TestSweepKeepsSessionAtExactThreshold(t *testing.T) {
	s := NewStore(90 * time.Second)
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.GetOrCreate("edge")
	now = now.Add(90 * time.Second)

	// Expiry requires strictly more than the timeout of idleness.
	if removed := s.SweepExpired(); removed != 0 {
		t.Fatalf("expected no eviction at the threshold, removed %d", removed)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore(90 * time.Second)
	s.GetOrCreate("s1")
	s.Remove("s1")

	if _, ok := s.Get("s1"); ok {
		t.Fatal("expected session to be removed")
	}
	// Removing an absent id is a no-op.
	s.Remove("s1")
}
