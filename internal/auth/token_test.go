package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("testsecret", time.Hour)

	signed, err := tokens.Sign(42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	id, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tokens := NewTokenManager("testsecret", -time.Hour)

	signed, err := tokens.Sign(7)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewTokenManager("one-secret", time.Hour)
	verifier := NewTokenManager("another-secret", time.Hour)

	signed, err := signer.Sign(7)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager("testsecret", time.Hour)

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tokens.Verify(raw)
		assert.Error(t, err, "token %q should not verify", raw)
	}
}
