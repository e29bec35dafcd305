package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/pkg/apperrors"
)

// Session is one authenticated login. Student is set only for Student-role
// sessions. Sessions carry no expiry and no signed token; they exist only in
// process memory and are all lost on restart.
type Session struct {
	ID      string
	User    models.User
	Student *models.Student
}

// SessionManager is the in-memory session registry.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionManager creates an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]Session)}
}

// Create registers a session for the user and returns it. The session id is
// an opaque uuid; its only contract is uniqueness.
func (m *SessionManager) Create(user models.User, student *models.Student) Session {
	s := Session{
		ID:      uuid.NewString(),
		User:    user,
		Student: student,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id, or ErrSessionNotFound.
func (m *SessionManager) Get(id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, apperrors.ErrSessionNotFound
	}
	return s, nil
}

// Delete removes the session with the given id. Deleting an unknown id is a
// no-op.
func (m *SessionManager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
