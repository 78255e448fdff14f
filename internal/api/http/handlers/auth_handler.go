package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/a1technologies/cooling-crm/internal/access"
	"github.com/a1technologies/cooling-crm/internal/api/dto"
	"github.com/a1technologies/cooling-crm/internal/auth"
	"github.com/a1technologies/cooling-crm/internal/service"
	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
	"github.com/a1technologies/cooling-crm/pkg/util/validator"
)

// AuthHandler exposes demo login and logout.
type AuthHandler struct {
	service      *service.AuthService
	validator    *validator.Validator
	secureCookie bool
}

// NewAuthHandler constructs handler. secureCookie marks the session cookie HTTPS-only.
func NewAuthHandler(authService *service.AuthService, v *validator.Validator, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: authService, validator: v, secureCookie: secureCookie}
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      identityResponse(result.Identity),
		Dashboard: string(access.DashboardFor(result.Identity.Role)),
	}})
}

// Logout POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	if err := h.service.Logout(c.UserContext(), principal.SessionID); err != nil {
		return err
	}
	c.ClearCookie(auth.CookieName)
	return c.SendStatus(http.StatusNoContent)
}

// Me GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return apperrors.NewUnauthorized("session required")
	}
	return c.JSON(fiber.Map{"data": identityResponse(*identity)})
}
