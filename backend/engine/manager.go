package engine

import "sync"

// Manager hands out one Session per user. Progression is single-session and
// request-at-a-time per the product model, so the lock only guards the map
// itself.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: map[string]*Session{}}
}

// Session returns the user's session, creating it from the loaded progress
// record on first access.
func (m *Manager) Session(userID string, load func() *Progress) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := NewSession(load())
	m.sessions[userID] = s
	return s
}

// Drop forgets a user's session, forcing the next access to reload from the
// store. Used by tests and logout.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
