package config

import (
	"fmt"

	"github.com/HifricAldar/cloud-computing/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Otp{},
		&models.Food{},
		&models.FoodGroup{},
		&models.FoodRate{},
		&models.FoodHistory{},
		&models.ScanHistory{},
		&models.PointHistory{},
		&models.Gift{},
	)
	if err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}
