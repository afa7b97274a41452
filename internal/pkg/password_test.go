package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasherHashIsNotPlaintext(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, len(hash) > 0)
}

func TestHasherVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.NoError(t, h.Verify(hash, "s3cret"))
	assert.Error(t, h.Verify(hash, "not-the-password"))
	assert.Error(t, h.Verify(hash, ""))
}

func TestHasherSaltsEachHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	h1, err := h.Hash("same")
	require.NoError(t, err)
	h2, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestNewHasherClampsBadCost(t *testing.T) {
	h := NewHasher(999)
	assert.Equal(t, DefaultBcryptCost, h.cost)
}
