package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables behind every repository,
// including the composite unique index that blocks double bookings.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&profileModel{},
		&categoryModel{},
		&serviceModel{},
		&orderModel{},
		&reviewModel{},
	)
}
