package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "s3cret-password")

	t.Run("VerifyCorrectPassword", func(t *testing.T) {
		assert.True(t, VerifyPassword("s3cret-password", hash))
	})

	t.Run("RejectWrongPassword", func(t *testing.T) {
		assert.False(t, VerifyPassword("wrong-password", hash))
	})

	t.Run("RejectMalformedHash", func(t *testing.T) {
		assert.False(t, VerifyPassword("s3cret-password", "garbage"))
		assert.False(t, VerifyPassword("s3cret-password", "a.b"))
	})

	t.Run("SaltsDiffer", func(t *testing.T) {
		other, err := HashPassword("s3cret-password")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}
