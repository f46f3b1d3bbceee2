package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no exp claim")

// Claims is the subset of the bearer token the storefront reads. The
// signature is checked by the backend, never here.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// Inspect decodes the token payload without verifying it.
func Inspect(raw string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, mc); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if role, ok := mc["role"].(string); ok {
		c.Role = role
	}
	exp, err := mc.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("exp claim: %w", err)
	}
	if exp == nil {
		return c, ErrNoExpiry
	}
	c.ExpiresAt = exp.Time
	return c, nil
}

// TTL is how long a token should be kept. Opaque or exp-less tokens get the
// fallback; expired tokens get zero.
func TTL(raw string, now time.Time, fallback time.Duration) time.Duration {
	c, err := Inspect(raw)
	if err != nil {
		return fallback
	}
	left := c.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
