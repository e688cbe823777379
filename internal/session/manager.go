package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ugaemi/geonerd-server/internal/location"
	"github.com/ugaemi/geonerd-server/internal/tournament"
	"github.com/ugaemi/geonerd-server/internal/ws"
)

// Manager manages all active sessions.
type Manager struct {
	sessions map[string]*Session // session ID -> session
	byClient map[string]string   // client ID -> session ID

	cfg        tournament.Config
	provider   location.Provider
	onComplete CompleteFunc

	mu sync.RWMutex
}

// NewManager creates a session manager. Every session starts from cfg with
// its own mode.
func NewManager(cfg tournament.Config, provider location.Provider, onComplete CompleteFunc) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		byClient:   make(map[string]string),
		cfg:        cfg,
		provider:   provider,
		onComplete: onComplete,
	}
}

// Create starts a new tournament for client, replacing any session the
// client already has.
func (m *Manager) Create(ctx context.Context, client *ws.Client, playerID string, mode location.Mode) *Session {
	cfg := m.cfg
	cfg.Mode = mode
	s := New(client, playerID, cfg, m.provider, m.onComplete)

	m.mu.Lock()
	previous := m.sessions[m.byClient[client.ID]]
	if previous != nil {
		delete(m.sessions, previous.ID)
	}
	m.sessions[s.ID] = s
	m.byClient[client.ID] = s.ID
	m.mu.Unlock()

	if previous != nil {
		previous.Stop()
		slog.Info("session replaced", "session", previous.ID, "client", client.ID)
	}

	slog.Info("session created", "session", s.ID, "player", playerID, "mode", string(mode))
	s.Start(ctx)
	return s
}

// Get returns a session by its ID.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// FindByClient returns the session owned by a client.
func (m *Manager) FindByClient(clientID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[m.byClient[clientID]]
}

// RemoveByClient stops and forgets the client's session. It returns false
// when the client has none.
func (m *Manager) RemoveByClient(clientID string) bool {
	m.mu.Lock()
	s := m.sessions[m.byClient[clientID]]
	delete(m.byClient, clientID)
	if s != nil {
		delete(m.sessions, s.ID)
	}
	m.mu.Unlock()

	if s == nil {
		return false
	}
	s.Stop()
	slog.Info("session removed", "session", s.ID, "client", clientID)
	return true
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
