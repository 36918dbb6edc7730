package auth

import "errors"

// Роли субъектов токена
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// IsAdmin проверяет является ли субъект администратором
func IsAdmin(claims *Claims) bool {
	return claims.Role == RoleAdmin
}

// ValidateRole проверяет валидность роли
func ValidateRole(role string) error {
	switch role {
	case RoleUser, RoleProvider, RoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
