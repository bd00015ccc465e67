// Package session holds per-user pending-request state and the
// single-flight processing guard.
package session

import (
	"sync"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
)

// UserSession bridges the "link accepted" and "quality chosen" steps
type UserSession struct {
	URL   string
	Codec entities.AudioCodec
}

// Store is an in-memory mapping from user ID to pending-request state.
// At most one session exists per user; a new one overwrites the old.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]UserSession
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[int64]UserSession)}
}

// Get returns the session for a user, if any
func (s *Store) Get(userID int64) (UserSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Set creates or overwrites the session for a user
func (s *Store) Set(userID int64, sess UserSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Delete removes the session for a user
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Guard tracks which users currently have a request in flight.
// TryAcquire and Release are the only mutual-exclusion discipline in
// the system; different users proceed fully in parallel.
type Guard struct {
	mu     sync.Mutex
	active map[int64]struct{}
}

// NewGuard creates an empty processing guard
func NewGuard() *Guard {
	return &Guard{active: make(map[int64]struct{})}
}

// TryAcquire atomically marks the user as processing. It returns false
// if the user already has a request in flight.
func (g *Guard) TryAcquire(userID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[userID]; busy {
		return false
	}
	g.active[userID] = struct{}{}
	return true
}

// Release removes the user from the processing set. Releasing a user
// that is not active is a no-op, so it is safe to call on every exit
// path.
func (g *Guard) Release(userID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, userID)
}

// IsActive reports whether the user has a request in flight
func (g *Guard) IsActive(userID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[userID]
	return busy
}

// ActiveCount returns the number of requests currently in flight
func (g *Guard) ActiveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.active)
}
