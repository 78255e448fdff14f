package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/a1technologies/cooling-crm/internal/auth"
	"github.com/a1technologies/cooling-crm/internal/config"
	"github.com/a1technologies/cooling-crm/internal/domain"
	"github.com/a1technologies/cooling-crm/internal/session"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
)

// EmailRequiredMessage is returned for a blank login email.
const EmailRequiredMessage = "Please enter a demo email."

// AuthService coordinates login and logout against the session store.
type AuthService struct {
	sessions *session.Manager
	tokenMgr *auth.TokenManager
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	Sessions *session.Manager
}

// LoginResult is a fresh session and its signed token.
type LoginResult struct {
	SessionID string
	Identity  domain.Identity
	Token     string
	ExpiresAt time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		sessions: deps.Sessions,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login opens a new session for the demo account matching email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	sessionID := uuid.NewString()
	identity, err := s.sessions.Open(sessionID).Login(ctx, email, password)
	if err != nil {
		return nil, s.loginError(err)
	}
	token, exp, err := s.tokenMgr.GenerateToken(sessionID, identity)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{SessionID: sessionID, Identity: identity, Token: token, ExpiresAt: exp}, nil
}

// Logout clears the session; the token stops resolving afterwards.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Open(sessionID).Logout(ctx); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// DemoAccounts lists the accounts offered on the login view.
func (s *AuthService) DemoAccounts() []domain.Identity {
	return s.sessions.Directory().Identities()
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) loginError(err error) error {
	switch {
	case errors.Is(err, session.ErrEmailRequired):
		return apperrors.NewValidationError(EmailRequiredMessage, map[string]any{"email": "required"})
	case errors.Is(err, session.ErrUnknownEmail):
		emails := s.demoEmails()
		return apperrors.NewDomainError("UNKNOWN_EMAIL",
			fmt.Sprintf("Invalid email. Try %s", joinOr(emails)),
			http.StatusUnauthorized,
			map[string]any{"demo_accounts": emails})
	case errors.Is(err, session.ErrInvalidPassword):
		return apperrors.NewUnauthorized("invalid credentials")
	default:
		return apperrors.MapError(err)
	}
}

func (s *AuthService) demoEmails() []string {
	accounts := s.DemoAccounts()
	emails := make([]string, 0, len(accounts))
	for _, a := range accounts {
		emails = append(emails, a.Email)
	}
	return emails
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return "a demo account"
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
