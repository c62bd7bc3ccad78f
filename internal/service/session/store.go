package session

import (
	"sync"
	"time"

	"github.com/harmony2k/balancee-ussd/internal/model/session"
)

// Store keeps active dialog sessions in memory with idle-timeout eviction.
// It is safe under concurrent access from unrelated sessions; turns of a
// single dialog are serialized by the upstream gateway, so a race on one id
// resolves last-write-wins. A multi-instance deployment must replace this
// with a shared cache or sticky routing.
type Store struct {
	mu      sync.Mutex
	timeout time.Duration
	items   map[string]*session.Session
	now     func() time.Time
}

// NewStore returns an empty store evicting sessions idle longer than timeout.
func NewStore(timeout time.Duration) *Store {
	return &Store{
		timeout: timeout,
		items:   make(map[string]*session.Session),
		now:     time.Now,
	}
}

// GetOrCreate returns the session for id, creating it on first sight, and
// refreshes its last-activity timestamp either way.
func (s *Store) GetOrCreate(id string) *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok {
		sess = session.New(id, s.now())
		s.items[id] = sess
		return sess
	}
	sess.Touch(s.now())
	return sess
}

// Get returns the session for id without touching it.
func (s *Store) Get(id string) (*session.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	return sess, ok
}

// Remove deletes the session for id, if present.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// SweepExpired removes every session idle past the timeout and reports how
// many were evicted. It scans all active sessions; callers invoke it once
// per incoming request.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.items {
		if sess.Expired(now, s.timeout) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
