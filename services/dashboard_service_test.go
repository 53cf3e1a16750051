package services

import (
	"testing"
	"time"

	"github.com/Fayets/NutriFA/apperror"
	"github.com/Fayets/NutriFA/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyEmptyDay(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewDashboardService(db)

	summary, err := svc.Daily(user.ID, date(2025, time.March, 10))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", summary.Date)
	assert.Equal(t, 0.0, summary.TotalCalories)
	assert.Equal(t, 0.0, summary.TotalProtein)
	assert.Equal(t, 0.0, summary.TotalCarbs)
	assert.Equal(t, 0.0, summary.TotalFat)
	assert.Equal(t, models.DefaultMetabolismBase, summary.MetabolismBase)
	assert.Equal(t, -float64(models.DefaultMetabolismBase), summary.Balance)
	assert.Equal(t, MacroPercentages{}, summary.MacroPercentages)
}

func TestDailyLazilyPersistsDefaultSettings(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewDashboardService(db)

	_, err := svc.Daily(user.ID, date(2025, time.March, 10))
	require.NoError(t, err)

	var settings models.Settings
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&settings).Error)
	assert.Equal(t, models.DefaultMetabolismBase, settings.MetabolismBase)
	assert.Nil(t, settings.ProteinTarget)

	// A second read reuses the row.
	_, err = svc.Daily(user.ID, date(2025, time.March, 11))
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&models.Settings{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDailySumsAndBalance(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	food := createTestFood(t, db, "Oats", &user.ID, nil)
	day := date(2025, time.March, 10)
	seedMeal(t, db, user.ID, food.ID, day.Add(8*time.Hour), 500, 30, 50, 10)
	seedMeal(t, db, user.ID, food.ID, day.Add(20*time.Hour), 700, 40, 60, 25)
	// Neighboring days must not leak in.
	seedMeal(t, db, user.ID, food.ID, day.AddDate(0, 0, 1), 999, 1, 1, 1)
	seedMeal(t, db, user.ID, food.ID, day.AddDate(0, 0, -1), 999, 1, 1, 1)

	_, err := NewSettingsService(db).Create(user.ID, SettingsInput{MetabolismBase: intPtr(2000)})
	require.NoError(t, err)

	summary, err := NewDashboardService(db).Daily(user.ID, day)
	require.NoError(t, err)

	assert.Equal(t, 1200.0, summary.TotalCalories)
	assert.Equal(t, 70.0, summary.TotalProtein)
	assert.Equal(t, 110.0, summary.TotalCarbs)
	assert.Equal(t, 35.0, summary.TotalFat)
	assert.Equal(t, 2000, summary.MetabolismBase)
	assert.Equal(t, -800.0, summary.Balance)

	pct := summary.MacroPercentages
	sum := pct.ProteinPercent + pct.CarbsPercent + pct.FatPercent
	assert.InDelta(t, 100.0, sum, 1e-9)
	// 70g*4 + 110g*4 + 35g*9 = 280 + 440 + 315 = 1035 macro kcal
	assert.InDelta(t, 280.0/1035.0*100, pct.ProteinPercent, 1e-9)
	assert.InDelta(t, 440.0/1035.0*100, pct.CarbsPercent, 1e-9)
	assert.InDelta(t, 315.0/1035.0*100, pct.FatPercent, 1e-9)
}

func TestDailyUserMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)

	_, err := svc.Daily(42, date(2025, time.March, 10))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRangeInvalid(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewDashboardService(db)

	_, err := svc.Range(user.ID, date(2025, time.March, 10), date(2025, time.March, 9))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestRangeSingleDayEqualsDaily(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	food := createTestFood(t, db, "Oats", &user.ID, nil)
	day := date(2025, time.March, 10)
	seedMeal(t, db, user.ID, food.ID, day.Add(12*time.Hour), 640, 35, 70, 20)
	svc := NewDashboardService(db)

	daily, err := svc.Daily(user.ID, day)
	require.NoError(t, err)

	ranged, err := svc.Range(user.ID, day, day)
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, *daily, ranged[0])
}

func TestRangeZeroFillsEmptyDays(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	food := createTestFood(t, db, "Oats", &user.ID, nil)
	middle := date(2025, time.March, 11)
	seedMeal(t, db, user.ID, food.ID, middle.Add(13*time.Hour), 450, 25, 40, 15)
	svc := NewDashboardService(db)

	summaries, err := svc.Range(user.ID, date(2025, time.March, 10), date(2025, time.March, 12))
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, "2025-03-10", summaries[0].Date)
	assert.Equal(t, "2025-03-11", summaries[1].Date)
	assert.Equal(t, "2025-03-12", summaries[2].Date)

	assert.Equal(t, 0.0, summaries[0].TotalCalories)
	assert.Equal(t, MacroPercentages{}, summaries[0].MacroPercentages)
	assert.Equal(t, 450.0, summaries[1].TotalCalories)
	assert.Equal(t, 0.0, summaries[2].TotalCalories)

	// Empty days still carry the metabolism baseline into the balance.
	assert.Equal(t, -float64(models.DefaultMetabolismBase), summaries[0].Balance)
}

func TestRangeCrossesMonthBoundary(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewDashboardService(db)

	// 2024 is a leap year: Feb 27 .. Mar 1 is four contiguous days.
	summaries, err := svc.Range(user.ID, date(2024, time.February, 27), date(2024, time.March, 1))
	require.NoError(t, err)
	require.Len(t, summaries, 4)
	assert.Equal(t, "2024-02-27", summaries[0].Date)
	assert.Equal(t, "2024-02-28", summaries[1].Date)
	assert.Equal(t, "2024-02-29", summaries[2].Date)
	assert.Equal(t, "2024-03-01", summaries[3].Date)
}

func TestMacroPercentagesZeroWhenNoMacroCalories(t *testing.T) {
	got := computeMacroPercentages(0, 0, 0)
	assert.Equal(t, MacroPercentages{ProteinPercent: 0.0, CarbsPercent: 0.0, FatPercent: 0.0}, got)

	// Calories without macro grams (e.g. alcohol) still yield exact zeros.
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	food := createTestFood(t, db, "Spirit", &user.ID, nil)
	day := date(2025, time.March, 10)
	seedMeal(t, db, user.ID, food.ID, day.Add(21*time.Hour), 231, 0, 0, 0)

	summary, err := NewDashboardService(db).Daily(user.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 231.0, summary.TotalCalories)
	assert.Equal(t, MacroPercentages{}, summary.MacroPercentages)
}

func TestRangeUsesCurrentSettingsSnapshot(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	_, err := NewSettingsService(db).Create(user.ID, SettingsInput{MetabolismBase: intPtr(1500)})
	require.NoError(t, err)
	svc := NewDashboardService(db)

	summaries, err := svc.Range(user.ID, date(2025, time.March, 10), date(2025, time.March, 11))
	require.NoError(t, err)
	for _, s := range summaries {
		assert.Equal(t, 1500, s.MetabolismBase)
		assert.Equal(t, -1500.0, s.Balance)
	}
}
