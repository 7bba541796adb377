// Package token issues and validates the stateless bearer tokens that bind
// a request to an internal user ID.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 72 * time.Hour

// Issuer signs and verifies HS256 JWTs with a process-wide secret.
type Issuer struct {
	secret []byte
}

// NewIssuer creates an Issuer with the given secret.
// The secret should be at least 32 bytes of random data in production.
func NewIssuer(secret string) (*Issuer, error) {
	if len(secret) < 16 {
		return nil, errors.New("token: JWT secret must be at least 16 characters")
	}
	return &Issuer{secret: []byte(secret)}, nil
}

// Issue creates a signed token whose "sub" claim is the internal user ID.
func (i *Issuer) Issue(userID string) (string, error) {
	return i.IssueWithTTL(userID, DefaultTTL)
}

// IssueWithTTL creates a token with a custom expiry duration. Used in tests.
func (i *Issuer) IssueWithTTL(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: signing token: %w", err)
	}
	return signed, nil
}

// Resolve parses and verifies a token string and returns the internal user ID.
// Malformed, expired and wrongly signed tokens all fail.
func (i *Issuer) Resolve(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("token: unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("token: parsing token: %w", err)
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("token: invalid token")
	}
	return claims.Subject, nil
}
