package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	signer := NewSigner("test-secret")
	userID := uuid.New()

	token, err := signer.Generate(userID, "jane@example.com", "STAFF")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := signer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "STAFF", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewSigner("secret-a").Generate(uuid.New(), "jane@example.com", "STAFF")
	require.NoError(t, err)

	_, err = NewSigner("secret-b").Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	signer := NewSigner("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := signer.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
