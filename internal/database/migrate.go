package database

import (
	"serveeny_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate прогоняет AutoMigrate для всех моделей.
// Отдельной системы миграций нет - схема из двух таблиц.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() для первичных ключей
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Provider{},
	)
}
