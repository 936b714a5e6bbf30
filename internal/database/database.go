package database

import (
	"github.com/TharunSree/taxi-fleet-backend/internal/config"
	"github.com/TharunSree/taxi-fleet-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates the schema for every domain record.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Vendor{},
		&models.Vehicle{},
		&models.Package{},
		&models.Trip{},
		&models.Rating{},
		&models.SiteConfiguration{},
		&models.AuditLog{},
	)
}
