package session

import (
	"time"

	"go.uber.org/zap"
)

// Manager opens sessions over a shared slot store.
type Manager struct {
	slot      Slot
	directory Directory
	verifier  PasswordVerifier
	baseKey   string
	ttl       time.Duration
	logger    *zap.Logger
}

// ManagerDependencies wires a Manager. Verifier is optional.
type ManagerDependencies struct {
	Slot      Slot
	Directory Directory
	Verifier  PasswordVerifier
	SlotKey   string
	TTL       time.Duration
	Logger    *zap.Logger
}

// NewManager builds a session manager.
func NewManager(deps ManagerDependencies) *Manager {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		slot:      deps.Slot,
		directory: deps.Directory,
		verifier:  deps.Verifier,
		baseKey:   deps.SlotKey,
		ttl:       deps.TTL,
		logger:    logger,
	}
}

// Open returns the session for sessionID. An empty id maps to the bare slot key.
func (m *Manager) Open(sessionID string) *Session {
	return &Session{
		key:       m.Key(sessionID),
		ttl:       m.ttl,
		slot:      m.slot,
		directory: m.directory,
		verifier:  m.verifier,
		logger:    m.logger,
	}
}

// Key builds the slot key for sessionID.
func (m *Manager) Key(sessionID string) string {
	if sessionID == "" {
		return m.baseKey
	}
	return m.baseKey + ":" + sessionID
}

// Directory exposes the demo account directory.
func (m *Manager) Directory() Directory {
	return m.directory
}
