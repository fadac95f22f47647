package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
	assert.False(t, CheckPasswordHash("correct horse battery staple", "not-a-bcrypt-hash"))
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("admin", "admin"))
	assert.False(t, SecureCompare("admin", "Admin"))
	assert.False(t, SecureCompare("admin", "admin "))
	assert.False(t, SecureCompare("", "admin"))
	assert.True(t, SecureCompare("", ""))
}
