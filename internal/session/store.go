package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/content"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Store is an in-memory session store keyed by UUID.
// Safe for concurrent use by multiple goroutines. Reads return snapshots;
// writes go through Update so a slow provider call never holds the lock.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	logger   *slog.Logger
}

// NewStore creates an empty Store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Create registers a new session for the given request and returns a
// snapshot of it.
func (s *Store) Create(req content.Request) Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug("created session", "id", sess.ID, "topic", req.Topic)
	return *sess
}

// Get returns a snapshot of the session, or ErrNotFound.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

// Update applies fn to the session under the store lock and returns the
// resulting snapshot. fn must be fast: provider calls happen before Update,
// and their results are applied here atomically.
func (s *Store) Update(id string, fn func(*Session)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}

	fn(sess)
	sess.UpdatedAt = time.Now()
	return *sess, nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
