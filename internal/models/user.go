package models

import (
	"github.com/lib/pq"
)

// User - конечный пользователь каталога (и админ, через Role).
// Favorites - упорядоченный список id провайдеров без дубликатов;
// ссылочная целостность не гарантируется, "висячий" id допустим.
type User struct {
	BaseModel
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Phone        string         `json:"phone,omitempty"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Favorites    pq.StringArray `gorm:"type:text[]" json:"favorites"`
}
