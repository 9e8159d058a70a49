package memory

import (
	"context"
	"sync"
	"time"
)

// Store is an in-process session store used for tests and single-instance
// local runs. Sessions expire after the configured TTL; expired sessions are
// dropped lazily on access.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*entry
}

type entry struct {
	values   map[string]string
	deadline time.Time
}

// NewStore creates an in-memory session store with the given session TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*entry),
	}
}

// Get returns the value under key for the session.
func (s *Store) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(sessionID)
	if e == nil {
		return "", false, nil
	}
	v, ok := e.values[key]
	return v, ok, nil
}

// Set writes the value under key, overwriting any existing value.
func (s *Store) Set(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).values[key] = value
	return nil
}

// SetIfAbsent writes the value only when the key is empty.
func (s *Store) SetIfAbsent(_ context.Context, sessionID, key, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.session(sessionID)
	if _, ok := e.values[key]; ok {
		return false, nil
	}
	e.values[key] = value
	return true, nil
}

// GetDelete reads and removes the value under key in one operation.
func (s *Store) GetDelete(_ context.Context, sessionID, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(sessionID)
	if e == nil {
		return "", false, nil
	}
	v, ok := e.values[key]
	if ok {
		delete(e.values, key)
	}
	return v, ok, nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// Close drops all sessions.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]*entry)
	return nil
}

// live returns the session entry if it exists and has not expired.
// Callers must hold s.mu.
func (s *Store) live(sessionID string) *entry {
	e, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	if time.Now().After(e.deadline) {
		delete(s.sessions, sessionID)
		return nil
	}
	return e
}

// session returns the live entry for sessionID, creating one if needed.
// Each write extends the session deadline. Callers must hold s.mu.
func (s *Store) session(sessionID string) *entry {
	e := s.live(sessionID)
	if e == nil {
		e = &entry{values: make(map[string]string)}
		s.sessions[sessionID] = e
	}
	e.deadline = time.Now().Add(s.ttl)
	return e
}
