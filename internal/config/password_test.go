package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_CostOutOfRange(t *testing.T) {
	for _, cost := range []string{"9", "15"} {
		t.Setenv("BCRYPT_COST", cost)
		_, err := NewPasswordConfig()
		assert.Error(t, err, "cost %s should be rejected", cost)
	}
}

func TestNewPasswordConfig_InvalidCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")
	_, err := NewPasswordConfig()
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, cfg.VerifyPassword("hunter2hunter2", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	first, err := cfg.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	second, err := cfg.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_WithPepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-secret"}

	hash, err := peppered.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.True(t, peppered.VerifyPassword("hunter2hunter2", hash))

	// Without the pepper the same password must not verify.
	plain := &PasswordConfig{BcryptCost: 10}
	assert.False(t, plain.VerifyPassword("hunter2hunter2", hash))
}
