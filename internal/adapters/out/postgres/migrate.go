package postgres

import (
	"routing/internal/adapters/out/postgres/courierrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by this adapter.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&courierrepo.CourierDTO{})
}
