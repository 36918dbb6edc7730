package auth

import (
	"testing"

	"serveeny_backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func setTestConfig(secret string, ttlHours int) {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTLHours = ttlHours
	config.AppConfig = cfg
}

func TestGenerateAndParseToken_RoundTrip(t *testing.T) {
	setTestConfig("test-secret", 720)

	cases := []struct {
		name   string
		userID string
		role   string
	}{
		{"user role", "11111111-1111-1111-1111-111111111111", RoleUser},
		{"provider role", "22222222-2222-2222-2222-222222222222", RoleProvider},
		{"admin role", "33333333-3333-3333-3333-333333333333", RoleAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := GenerateToken(tc.userID, tc.role)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := ParseToken(token)
			assert.NoError(t, err)
			assert.Equal(t, tc.userID, claims.UserID)
			assert.Equal(t, tc.role, claims.Role)
		})
	}
}

func TestParseToken_Expired(t *testing.T) {
	// Отрицательный TTL - токен истек в момент выпуска
	setTestConfig("test-secret", -1)

	token, err := GenerateToken("user-id", RoleUser)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig("secret-one", 720)
	token, err := GenerateToken("user-id", RoleUser)
	assert.NoError(t, err)

	setTestConfig("secret-two", 720)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig("test-secret", 720)

	_, err := ParseToken("not-a-jwt-at-all")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(RoleUser))
	assert.NoError(t, ValidateRole(RoleProvider))
	assert.NoError(t, ValidateRole(RoleAdmin))
	assert.Error(t, ValidateRole("superuser"))
}
