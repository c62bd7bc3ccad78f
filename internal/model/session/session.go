package session

import "time"

// Session correlates consecutive turns of one USSD dialog. Scratch data in
// Data carries cross-step working values (quoted costs, listed candidates)
// between turns; the path itself is resubmitted by the gateway every turn.
type Session struct {
	ID        string
	UpdatedAt time.Time
	Data      map[string]string
}

// New returns a fresh session stamped with the given time.
func New(id string, now time.Time) *Session {
	return &Session{ID: id, UpdatedAt: now, Data: make(map[string]string)}
}

// Touch refreshes the last-activity timestamp.
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}

// Expired reports whether the session has been idle longer than timeout.
func (s *Session) Expired(now time.Time, timeout time.Duration) bool {
	return now.Sub(s.UpdatedAt) > timeout
}

// Get returns the scratch value for key, or "" when absent.
func (s *Session) Get(key string) string {
	return s.Data[key]
}

// GetDefault returns the scratch value for key, or def when absent.
func (s *Session) GetDefault(key, def string) string {
	if v, ok := s.Data[key]; ok {
		return v
	}
	return def
}

// Set stores a scratch value.
func (s *Session) Set(key, value string) {
	s.Data[key] = value
}
