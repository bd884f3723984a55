package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, hasher.Verify("secret1", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}

func TestBcryptPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	hash2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.NoError(t, hasher.Verify("same-password", hash1))
	assert.NoError(t, hasher.Verify("same-password", hash2))
}

func TestBcryptPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty hash", hash: ""},
		{name: "garbage hash", hash: "not-a-bcrypt-hash"},
		{name: "foreign format", hash: "$argon2id$v=19$m=65536,t=3,p=2$abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				err := hasher.Verify("anything", tt.hash)
				assert.Error(t, err)
			})
		})
	}
}

func TestNewBcryptPasswordHasher_CostOutOfRange(t *testing.T) {
	hasher := NewBcryptPasswordHasher(100)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptPasswordHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
