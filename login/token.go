package login

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the login endpoint's token response.
type Token struct {
	AccessToken   string `json:"access_token"`
	TokenType     string `json:"token_type"`
	ExpiresIn     int    `json:"expires_in"`
	SlidingWindow int    `json:"sliding_window,omitempty"`

	// ExpiresAt is computed on login; zero means unknown.
	ExpiresAt time.Time `json:"-"`
}

// Expired reports whether the token is past its expiry at now. Tokens with
// an unknown expiry never expire locally.
func (t *Token) Expired(now time.Time) bool {
	if t == nil {
		return true
	}
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// Scheme returns the Authorization scheme, "bearer" when the server sent none.
func (t *Token) Scheme() string {
	if t.TokenType == "" {
		return "bearer"
	}
	return t.TokenType
}

// expiry prefers the JWT exp claim and falls back to expires_in seconds.
// The signature is not verified; the token is only read, never trusted.
func expiry(t *Token, issued time.Time) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	if t.ExpiresIn > 0 {
		return issued.Add(time.Duration(t.ExpiresIn) * time.Second)
	}
	return time.Time{}
}
