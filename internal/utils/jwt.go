package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned when a token carries no "exp" claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiry reads the "exp" claim of a provider-issued session token.
//
// The signature is not checked: the token arrives over TLS from the provider
// the client has just authenticated with, and only its lifetime is read.
func TokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse session token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}
