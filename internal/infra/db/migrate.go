package db

import (
	"fmt"

	"sebetamart/internal/domain/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the API uses.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Subcity{},
		&model.Seller{},
		&model.Product{},
		&model.Order{},
		&model.DeliveryProfile{},
		&model.Favorite{},
		&model.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
