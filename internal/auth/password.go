package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// DemoPasswordVerifier checks every demo account against one shared password.
type DemoPasswordVerifier struct {
	hash string
}

// NewDemoPasswordVerifier hashes password once so the plaintext is not kept in memory.
func NewDemoPasswordVerifier(password string, cost int) (*DemoPasswordVerifier, error) {
	hash, err := HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	return &DemoPasswordVerifier{hash: hash}, nil
}

// Verify implements session.PasswordVerifier.
func (v *DemoPasswordVerifier) Verify(_ domain.Identity, password string) error {
	return ComparePassword(v.hash, password)
}
