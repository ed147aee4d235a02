package database

import (
	"fmt"

	"github.com/Tareq669/bot-sub000/internal/config"
	"github.com/Tareq669/bot-sub000/internal/logging"
	"github.com/Tareq669/bot-sub000/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logging.Log.Fatalf("failed to connect to database: %v", err)
	}

	logging.Log.Info("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Group{},
		&models.ScoreRecord{},
		&models.Team{},
		&models.TeamMember{},
		&models.Tournament{},
		&models.Wallet{},
	)
	if err != nil {
		logging.Log.Fatalf("failed to auto-migrate: %v", err)
	}
	logging.Log.Info("database migrated")
}
