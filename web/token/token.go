// Package token issues and verifies the stateless bearer tokens used to
// guard protected routes. Verification needs no server-side lookup, which
// also means tokens cannot be revoked before they expire.
package token

import (
	"errors"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken     = errors.New("missing authorization header")
	ErrMalformedHeader  = errors.New("invalid authorization header")
	ErrMalformedToken   = errors.New("malformed token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// Manager signs and verifies access tokens with a process-wide secret.
// Rotating the secret invalidates all outstanding tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token carrying the user id as subject, valid for
// the manager's ttl.
func (m *Manager) Issue(userId int) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userId),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify validates the token string and returns the embedded user id.
func (m *Manager) Verify(tokenStr string) (int, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrInvalidSignature
		default:
			return 0, ErrMalformedToken
		}
	}
	if !tok.Valid {
		return 0, ErrMalformedToken
	}
	claims, _ := tok.Claims.(*jwt.RegisteredClaims)
	if claims == nil {
		return 0, ErrMalformedToken
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, ErrMalformedToken
	}
	return id, nil
}

// FromHeader extracts the raw token from an Authorization header value,
// enforcing the "Bearer <token>" shape.
func FromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedHeader
	}
	tokenStr := strings.TrimSpace(parts[1])
	if tokenStr == "" {
		return "", ErrMalformedHeader
	}
	return tokenStr, nil
}
