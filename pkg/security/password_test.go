package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", hash)
	assert.True(t, hasher.Verify("secret", hash))
	assert.False(t, hasher.Verify("Secret", hash))
}

func TestBcryptHasher_IsSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_VerifyGarbageHash(t *testing.T) {
	assert.False(t, NewBcryptHasher(bcrypt.MinCost).Verify("secret", "not-a-hash"))
}

func TestNewBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}
