package api

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/overtone-studio/site-backend/errs"
)

// sessionManager issues and verifies the signed session tokens that gate
// the admin routes. Tokens are stateless: sign-out is the client
// discarding its token, and expiry is the only server-side invalidation.
type sessionManager struct {
	secret []byte
	ttl    time.Duration
}

func newSessionManager(secret string, ttl time.Duration) sessionManager {
	return sessionManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a session token for the given admin email.
func (m sessionManager) Issue(email string, now time.Time) (token string, expiresAt time.Time, err error) {
	expiresAt = now.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	return token, expiresAt, err
}

// Verify parses a session token and returns the admin email it was issued
// for. Expired and malformed tokens map to the matching auth error.
func (m sessionManager) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.NewExpiredTokenError()
		}
		return "", errs.NewInvalidTokenError()
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errs.NewInvalidTokenError()
	}
	return claims.Subject, nil
}
