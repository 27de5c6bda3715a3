package database

import (
	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/pkg/models"
)

func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Template{},
		&models.Sprint{},
		&models.Message{},
	)
}
