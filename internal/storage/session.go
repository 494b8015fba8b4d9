package storage

import (
	"sync"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/session"
)

// ActiveSession is a running practice sitting together with the corpus
// it was composed from. Sessions are ephemeral and live only in memory;
// an unfinished session is simply dropped.
type ActiveSession struct {
	Corpus entities.Corpus
	Sess   *session.Session
}

// SessionStorage provides in-memory storage for active practice
// sessions, one per user.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*ActiveSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*ActiveSession),
	}
}

// Store saves the active session of a user, replacing any previous one.
func (s *SessionStorage) Store(userID int64, active *ActiveSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = active
}

// Get retrieves the active session of a user.
func (s *SessionStorage) Get(userID int64) (*ActiveSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active, ok := s.sessions[userID]
	return active, ok
}

// Delete removes the active session of a user.
func (s *SessionStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
