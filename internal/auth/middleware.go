package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/a1technologies/cooling-crm/internal/domain"
	"github.com/a1technologies/cooling-crm/internal/session"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// CookieName carries the session token for browser navigations.
const CookieName = "a1_session"

// Principal represents the authenticated caller.
type Principal struct {
	SessionID string
	Identity  domain.Identity
}

// AuthMiddleware resolves the session token to the identity held in the session slot.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions *session.Manager, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions, logger: logger}
}

// Optional attaches a principal when the caller carries a live session and continues either way.
func (m *AuthMiddleware) Optional(c *fiber.Ctx) error {
	if principal := m.resolve(c); principal != nil {
		c.Locals(principalKey, principal)
	}
	return c.Next()
}

// Handle enforces authentication for protected API routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	if _, ok := PrincipalFromContext(c); ok {
		return c.Next()
	}
	if extractToken(c) == "" {
		return apperrors.NewUnauthorized("missing session token")
	}
	principal := m.resolve(c)
	if principal == nil {
		return apperrors.NewUnauthorized("session expired or invalid")
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

func (m *AuthMiddleware) resolve(c *fiber.Ctx) *Principal {
	raw := extractToken(c)
	if raw == "" {
		return nil
	}
	claims, err := m.tokens.ParseToken(raw)
	if err != nil {
		return nil
	}
	identity, ok, err := m.sessions.Open(claims.SessionID).Restore(c.UserContext())
	if err != nil {
		m.logger.Warn("session restore failed", zap.String("sid", claims.SessionID), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	return &Principal{SessionID: claims.SessionID, Identity: identity}
}

func extractToken(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(CookieName)
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// IdentityFromContext returns the caller's identity, or nil when unauthenticated.
func IdentityFromContext(c *fiber.Ctx) *domain.Identity {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return nil
	}
	identity := principal.Identity
	return &identity
}
