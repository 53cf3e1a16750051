package config

import (
	"fmt"
	"os"

	"github.com/Fayets/NutriFA/logger"
	"github.com/Fayets/NutriFA/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment", zap.Error(err))
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	// TranslateError so unique-constraint violations come back as
	// gorm.ErrDuplicatedKey (username registration, barcode insert race).
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Settings{},
		&models.Food{},
		&models.Meal{},
	); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
}
