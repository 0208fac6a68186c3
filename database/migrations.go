package database

import (
	"gorm.io/gorm"

	"studentflow/studentflow/models"
)

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Event{},
		&models.Expense{},
		&models.Note{},
	)
}
