package services

import (
	"testing"
	"time"

	"github.com/Fayets/NutriFA/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database per test. The pool
// is pinned to one connection so every session sees the same :memory:
// database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Settings{},
		&models.Food{},
		&models.Meal{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestFood(t *testing.T, db *gorm.DB, name string, createdBy *uint, barcode *string) *models.Food {
	t.Helper()
	food := models.Food{
		Name:            name,
		CaloriesPer100g: 100,
		ProteinPer100g:  10,
		CarbsPer100g:    20,
		FatPer100g:      5,
		Barcode:         barcode,
		CreatedByID:     createdBy,
	}
	require.NoError(t, db.Create(&food).Error)
	return &food
}

// seedMeal inserts a meal row with explicit totals and timestamp, so
// aggregation tests can place meals on specific calendar days.
func seedMeal(t *testing.T, db *gorm.DB, userID, foodID uint, consumedAt time.Time, calories, protein, carbs, fat float64) *models.Meal {
	t.Helper()
	meal := models.Meal{
		UserID:        userID,
		FoodID:        foodID,
		QuantityGrams: 100,
		Calories:      calories,
		Protein:       protein,
		Carbs:         carbs,
		Fat:           fat,
		ConsumedAt:    consumedAt,
	}
	require.NoError(t, db.Create(&meal).Error)
	return &meal
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// mockFetcher is a counting stand-in for the external product database.
// onFetch lets a test mutate the store mid-resolution to exercise the
// double-checked insert.
type mockFetcher struct {
	calls   int
	product *Product
	err     error
	onFetch func(barcode string)
}

func (m *mockFetcher) FetchProduct(barcode string) (*Product, error) {
	m.calls++
	if m.onFetch != nil {
		m.onFetch(barcode)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.product, nil
}
