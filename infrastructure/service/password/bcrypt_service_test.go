package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordService(t *testing.T) {
	service := NewBcryptPasswordService(bcrypt.MinCost)

	t.Run("HashPassword", func(t *testing.T) {
		hash, err := service.HashPassword("obra-gruesa-2024")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "obra-gruesa-2024", hash)
	})

	t.Run("HashEmptyPassword", func(t *testing.T) {
		_, err := service.HashPassword("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("VerifyPassword", func(t *testing.T) {
		hash, err := service.HashPassword("obra-gruesa-2024")
		require.NoError(t, err)

		ok, err := service.VerifyPassword("obra-gruesa-2024", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("VerifyWrongPassword", func(t *testing.T) {
		hash, err := service.HashPassword("obra-gruesa-2024")
		require.NoError(t, err)

		ok, err := service.VerifyPassword("terminaciones", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("VerifyCorruptHash", func(t *testing.T) {
		ok, err := service.VerifyPassword("obra-gruesa-2024", "not-a-bcrypt-hash")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestNewBcryptPasswordService_Cost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordService(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptPasswordService(1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptPasswordService(99).cost)
}
