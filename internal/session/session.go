package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

var (
	// ErrEmailRequired is returned when login is attempted with a blank email.
	ErrEmailRequired = errors.New("email required")
	// ErrUnknownEmail is returned when no demo account matches the email.
	ErrUnknownEmail = errors.New("unknown email")
	// ErrInvalidPassword is returned when password enforcement is on and the check fails.
	ErrInvalidPassword = errors.New("invalid password")
)

// PasswordVerifier is an optional credential check applied after the email lookup.
type PasswordVerifier interface {
	Verify(identity domain.Identity, password string) error
}

type storedIdentity struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// Session holds the identity of one client session and mirrors it into its slot entry.
type Session struct {
	mu        sync.RWMutex
	key       string
	ttl       time.Duration
	slot      Slot
	directory Directory
	verifier  PasswordVerifier
	logger    *zap.Logger
	current   *domain.Identity
}

// Key is the slot key this session reads and writes.
func (s *Session) Key() string {
	return s.key
}

// Current returns the active identity.
func (s *Session) Current() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Identity{}, false
	}
	return *s.current, true
}

// Login selects the demo account for email. On failure the active identity is left as it was.
func (s *Session) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	if strings.TrimSpace(email) == "" {
		return domain.Identity{}, ErrEmailRequired
	}
	identity, ok := s.directory.Lookup(email)
	if !ok {
		return domain.Identity{}, ErrUnknownEmail
	}
	if s.verifier != nil {
		if err := s.verifier.Verify(identity, password); err != nil {
			return domain.Identity{}, ErrInvalidPassword
		}
	}

	raw, err := json.Marshal(storedIdentity{ID: identity.ID, Email: identity.Email, Name: identity.Name, Role: identity.Role})
	if err != nil {
		return domain.Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.Set(ctx, s.key, raw, s.ttl); err != nil {
		return domain.Identity{}, err
	}
	s.current = &identity
	return identity, nil
}

// Logout clears the identity and removes the slot entry.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return s.slot.Delete(ctx, s.key)
}

// Restore loads the identity from the slot. Absent or undecodable data leaves the session
// unauthenticated; the decoded fields are taken as stored.
func (s *Session) Restore(ctx context.Context) (domain.Identity, bool, error) {
	raw, found, err := s.slot.Get(ctx, s.key)
	if err != nil {
		return domain.Identity{}, false, err
	}
	if !found {
		return domain.Identity{}, false, nil
	}

	var stored storedIdentity
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.logger.Warn("discarding malformed session slot", zap.String("key", s.key), zap.Error(err))
		return domain.Identity{}, false, nil
	}

	identity := domain.Identity{ID: stored.ID, Email: stored.Email, Name: stored.Name, Role: stored.Role}
	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()
	return identity, true, nil
}
