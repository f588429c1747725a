package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("ana@fina.dev", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ana@fina.dev", claims.UserID)
}

func TestJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("ana@fina.dev", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err, "wrong secret")

	expired, err := GenerateJWT("ana@fina.dev", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.Error(t, err, "expired token")

	anonymous, err := GenerateJWT("", "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(anonymous, "secret")
	assert.ErrorIs(t, err, ErrMissingUser)

	_, err = ParseJWT("not-a-token", "secret")
	assert.Error(t, err)
}
