package auth

import (
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
)

// Claims is the payload of an access token issued by the identity service.
// The caller id travels in the registered "sub" claim.
type Claims struct {
	Subject domain.SubjectType `json:"subject"`
	Role    *domain.StaffRole  `json:"role,omitempty"`
	Name    string             `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenValidator verifies HS256 access tokens against a shared secret.
type TokenValidator struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenValidator builds a validator for tokens signed with secret.
func NewTokenValidator(secret string) *TokenValidator {
	return &TokenValidator{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Validate checks signature and expiry and returns the claims.
func (v *TokenValidator) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid || claims.RegisteredClaims.Subject == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
