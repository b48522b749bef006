package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret")

	signed, err := tokens.Issue("signup-1", "job_seeker")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "signup-1", claims.UserID)
	assert.Equal(t, "job_seeker", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokenService("secret-a").Issue("signup-1", "employer")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret")

	_, err := tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-pw")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pw", hash)

	assert.True(t, CheckPassword("secret-pw", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
