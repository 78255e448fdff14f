package dto

import (
	"time"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// LoginRequest payload. Password is only checked when enforcement is configured.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityResponse mirrors the session slot value.
type IdentityResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      IdentityResponse `json:"user"`
	Dashboard string           `json:"dashboard"`
}

// DemoAccount is listed on the login view.
type DemoAccount struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}
