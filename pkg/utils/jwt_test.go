package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenRoundTrip(t *testing.T) {
	token, err := CreateJWTToken(42, "uni@example.edu", "Example University", "UNIVERSITY", "UNI-2025-001", "test-secret")
	require.NoError(t, err)

	claims, err := ParseJWTToken(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "uni@example.edu", claims.Email)
	assert.Equal(t, "Example University", claims.FullName)
	assert.Equal(t, "UNIVERSITY", claims.Role)
	assert.Equal(t, "UNI-2025-001", claims.UID)
}

func TestParseJWTToken_WrongSecret(t *testing.T) {
	token, err := CreateJWTToken(1, "a@example.com", "A", "STUDENT", "STU-2025-001", "right-secret")
	require.NoError(t, err)

	_, err = ParseJWTToken(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseJWTToken_Garbage(t *testing.T) {
	_, err := ParseJWTToken("not-a-token", "secret")
	assert.Error(t, err)
}
