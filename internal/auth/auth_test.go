package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/a1technologies/cooling-crm/internal/domain"
	"github.com/a1technologies/cooling-crm/internal/session"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
)

var admin = domain.Identity{ID: "admin1", Email: "admin@a1.com", Name: "Admin User", Role: domain.RoleAdmin}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	token, exp, err := tm.GenerateToken("sid-1", admin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if exp.IsZero() {
		t.Fatalf("expected expiry")
	}
	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != "sid-1" || claims.Subject != "admin1" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if _, err := NewTokenManager("other", 5).ParseToken(token); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}

func TestDemoPasswordVerifier(t *testing.T) {
	v, err := NewDemoPasswordVerifier("demo", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	if err := v.Verify(admin, "demo"); err != nil {
		t.Fatalf("expected match: %v", err)
	}
	if err := v.Verify(admin, "wrong"); err == nil {
		t.Fatalf("expected mismatch")
	}
}

func newTestApp(t *testing.T) (*fiber.App, *TokenManager, *session.Manager) {
	t.Helper()
	tokens := NewTokenManager("secret", 5)
	sessions := session.NewManager(session.ManagerDependencies{
		Slot:      session.NewMemorySlot(),
		Directory: session.NewStaticDirectory([]domain.Identity{admin, {ID: "cust1", Email: "customer@a1.com", Role: domain.RoleCustomer}}),
		SlotKey:   "a1-crm-user",
	})
	mw := NewAuthMiddleware(tokens, sessions, zap.NewNop())

	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.SendStatus(fe.Code)
		}
		return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
	}})
	app.Get("/admin", mw.Handle, RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString(IdentityFromContext(c).Name)
	})
	app.Get("/optional", mw.Optional, func(c *fiber.Ctx) error {
		if IdentityFromContext(c) == nil {
			return c.SendString("anonymous")
		}
		return c.SendString("known")
	})
	return app, tokens, sessions
}

func login(t *testing.T, tokens *TokenManager, sessions *session.Manager, sid, email string) string {
	t.Helper()
	identity, err := sessions.Open(sid).Login(context.Background(), email, "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	token, _, err := tokens.GenerateToken(sid, identity)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func TestMiddlewareRoles(t *testing.T) {
	app, tokens, sessions := newTestApp(t)
	adminToken := login(t, tokens, sessions, "s-admin", "admin@a1.com")
	custToken := login(t, tokens, sessions, "s-cust", "customer@a1.com")

	cases := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{"missing token", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", "", http.StatusUnauthorized},
		{"wrong role", "Bearer " + custToken, "", http.StatusForbidden},
		{"admin bearer", "Bearer " + adminToken, "", http.StatusOK},
		{"admin cookie", "", adminToken, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tc.cookie})
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("status %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestMiddlewareRejectsLoggedOutSession(t *testing.T) {
	app, tokens, sessions := newTestApp(t)
	token := login(t, tokens, sessions, "s1", "admin@a1.com")
	if err := sessions.Open("s1").Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("optional route must not fail, got %d", resp.StatusCode)
	}
}
