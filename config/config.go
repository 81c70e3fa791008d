package config

import (
	"fmt"
	"os"

	"backend/logger"
	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.JournalEntry{},
		&models.MealEntry{},
		&models.MicronutrientProfile{},
		&models.LabResult{},
		&models.Supplement{},
		&models.Alert{},
	)
	if err != nil {
		logger.Error("automigrate failed", "err", err)
		os.Exit(1)
	}
}
