package service

import (
	"time"

	"taskapi/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims embedded in issued access tokens.
// The registered Subject claim carries the user's email, which the delivery
// layer resolves into the authenticated principal on every request.
type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Email returns the token subject, the authenticated user's email.
func (c *Claims) Email() string {
	return c.Subject
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed access token for the given identity.
	// The token is self-contained: it embeds the subject email, the role
	// and an expiry a fixed duration from issuance.
	Generate(email string, role entity.Role) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns the embedded claims on success.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token time-to-live.
	AccessTokenDuration() time.Duration
}
