package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the verified contents of an access token. The subject is
// the user ID as a string; numeric/string ambiguity at verification time is
// avoided by never encoding the ID as a number.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService defines the interface for issuing and verifying access tokens.
// Verification is stateless: the only shared state is the immutable signing
// secret, so any number of handlers can verify concurrently.
type TokenService interface {
	// IssueAccessToken creates a signed token whose subject is the given
	// identity and whose expiry is the configured lifetime from now.
	IssueAccessToken(identity string) (string, error)

	// ValidateToken checks signature and expiry of a token string and returns
	// its claims. Malformed, tampered and expired tokens fail identically.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
