package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 24)
	sessionID := uuid.NewString()

	token, err := m.GenerateSessionToken(sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "session", claims.Type)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 24).GenerateSessionToken(uuid.NewString())
	require.NoError(t, err)

	_, err = NewManager("secret-b", 24).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	m := NewManager("test-secret", 24)

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = m.ValidateToken("")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -1)

	token, err := m.GenerateSessionToken(uuid.NewString())
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}
