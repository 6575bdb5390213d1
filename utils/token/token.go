// Package token signs and verifies the short-lived HS256 service tokens
// used on internal endpoints (worker to API calls).
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "petlove-internal"

// Sign issues a service token whose subject is the calling service name.
func Sign(secret, service string, ttl time.Duration) (string, error) {
	jti, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   service,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        jti.String(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a service token and returns the service name
// it was issued to.
func Verify(secret, tokenString string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || !tok.Valid {
		return "", fmt.Errorf("invalid claims")
	}
	if claims.Issuer != issuer {
		return "", fmt.Errorf("unexpected issuer")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token missing service subject")
	}
	return claims.Subject, nil
}
