package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables for every model this package
// owns, including the user_roles join table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roleModel{},
		&userModel{},
		&movieModel{},
	)
}
