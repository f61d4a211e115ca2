package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"BaselExplorer/internal/bank"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one player's simulation. Its Store is never shared.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	store    *bank.Store
	lastSeen time.Time
}

// Registry maps session IDs to sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session), now: time.Now}
}

// Create registers a new session with an empty store.
func (r *Registry) Create() *Session {
	now := r.now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		store:     bank.NewStore(),
		lastSeen:  now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get looks up a session and marks it as used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	s.lastSeen = r.now()
	s.mu.Unlock()
	return s, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	return s, ok
}

// Evict removes sessions idle for longer than ttl and returns them.
func (r *Registry) Evict(ttl time.Duration) []*Session {
	cutoff := r.now().Add(-ttl)
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Session
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// With runs fn while holding the session lock.
func (s *Session) With(fn func(store *bank.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.store)
}
