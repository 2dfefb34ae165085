package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	conv     *Conversation
	lastSeen time.Time
}

// Manager owns one Conversation per browser session. Sessions are created
// on first touch and evicted after sitting idle for the TTL, which is the
// in-process equivalent of the browser session ending.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
	}

	// Cleanup goroutine
	go func() {
		for {
			time.Sleep(ttl)
			m.mu.Lock()
			for id, s := range m.sessions {
				if time.Since(s.lastSeen) > ttl {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}()

	return m
}

// Get returns the session's conversation, creating it on first touch.
// Every access refreshes the idle clock.
func (m *Manager) Get(sessionID uuid.UUID) *Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.sessions[sessionID]
	if !exists {
		s = &session{conv: &Conversation{}}
		m.sessions[sessionID] = s
	}
	s.lastSeen = time.Now()
	return s.conv
}

// Reset discards the session's conversation. The next Get starts empty.
func (m *Manager) Reset(sessionID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
}

// Count reports how many sessions are currently live.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
