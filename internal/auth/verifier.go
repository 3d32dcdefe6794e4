// internal/auth/verifier.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity claims read from a session token.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
}

// DisplayName returns the first non-empty of name and first_name, else "User".
func (c *Claims) DisplayName() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.FirstName != "":
		return c.FirstName
	default:
		return "User"
	}
}

// Verifier checks RS256 session tokens against a JWKS key set. The audience is not checked.
type Verifier struct {
	keys *JWKSCache
}

// NewVerifier creates a Verifier backed by keys.
func NewVerifier(keys *JWKSCache) *Verifier {
	return &Verifier{keys: keys}
}

// Verify parses and validates token and returns its claims.
func (v *Verifier) Verify(ctx context.Context, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.keys.Keyfunc(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
