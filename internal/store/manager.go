package store

import (
	"sync"
	"time"
)

// Session is the per-browser-session state that cannot live in the cookie:
// the answer cache, the notification feed and game progress.
type Session struct {
	Answers *AnswerStore
	Notices *NoticeFeed
	Games   *GameState

	lastSeen time.Time
}

// Manager maps session ids to their in-process state. Sessions idle past
// the TTL are swept on access.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

var (
	managerInstance *Manager
	managerOnce     sync.Once
)

// GetManager returns the singleton session manager.
func GetManager() *Manager {
	managerOnce.Do(func() {
		managerInstance = &Manager{
			sessions: make(map[string]*Session),
			ttl:      24 * time.Hour,
		}
	})
	return managerInstance
}

// Get returns the state for sid, creating it on first use.
func (m *Manager) Get(sid string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}

	s, ok := m.sessions[sid]
	if !ok {
		s = &Session{
			Answers: NewAnswerStore(),
			Notices: NewNoticeFeed(),
			Games:   NewGameState(),
		}
		m.sessions[sid] = s
	}
	s.lastSeen = now
	return s
}

// Drop removes a session's state, e.g. on logout.
func (m *Manager) Drop(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
}
