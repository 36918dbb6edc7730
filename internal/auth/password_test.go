package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_AndCheck(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("password123", "not-a-bcrypt-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(""))
}
