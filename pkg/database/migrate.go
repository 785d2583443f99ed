package database

import (
	"FlowHub/models"

	"gorm.io/gorm"
)

// Migrate 同步全部表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
