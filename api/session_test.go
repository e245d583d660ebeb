package api

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overtone-studio/site-backend/errs"
)

func TestSessionRoundTrip(t *testing.T) {
	sessions := newSessionManager("test-secret", time.Hour)

	token, expiresAt, err := sessions.Issue("admin@studio.test", time.Now())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	email, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@studio.test", email)
}

func TestSessionExpiry(t *testing.T) {
	sessions := newSessionManager("test-secret", time.Hour)

	token, _, err := sessions.Issue("admin@studio.test", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = sessions.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrExpiredToken))
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	issued, _, err := newSessionManager("secret-a", time.Hour).Issue("admin@studio.test", time.Now())
	require.NoError(t, err)

	_, err = newSessionManager("secret-b", time.Hour).Verify(issued)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidToken))
}

func TestSessionRejectsGarbage(t *testing.T) {
	sessions := newSessionManager("test-secret", time.Hour)

	_, err := sessions.Verify("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidToken))
}
