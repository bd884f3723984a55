package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWTService_Verify_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.GenerateWithTTL(42, "alice", -1*time.Second)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 15)
	other := NewJWTService("other-secret", 15)

	token, err := svc.Generate(42, "alice")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_Generate_ZeroUserID(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	_, err := svc.Generate(0, "nobody")
	assert.Error(t, err)
}

func TestJWTService_Verify_TamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate(42, "alice")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}
