package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"courier/config"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	password := "courier-secret-1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Verify(password, hash))
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})
	password := "courier-secret-1"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Verify(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Verify("wrong-password", hash))

	// Test empty password
	assert.False(t, hasher.Verify("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Verify(password, "invalid_hash"))
}

func TestBcryptHasher_WithConfiguredCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: customCost},
	})

	password := "courier-secret-1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Verify(password, hash))
}

func TestBcryptHasher_OutOfRangeCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	})

	hash, err := hasher.Hash("courier-secret-1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
