package services

import (
	"time"

	"github.com/Fayets/NutriFA/models"
	"github.com/Fayets/NutriFA/utils"

	"gorm.io/gorm"
)

// DashboardService derives nutrition summaries from raw meal records.
// Nothing is persisted per call except the lazily materialized default
// settings; every summary is recomputed from source data.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type MacroPercentages struct {
	ProteinPercent float64 `json:"protein_percent"`
	CarbsPercent   float64 `json:"carbs_percent"`
	FatPercent     float64 `json:"fat_percent"`
}

type DaySummary struct {
	Date             string           `json:"date"`
	TotalCalories    float64          `json:"total_calories"`
	MetabolismBase   int              `json:"metabolism_base"`
	Balance          float64          `json:"balance"`
	TotalProtein     float64          `json:"total_protein"`
	TotalCarbs       float64          `json:"total_carbs"`
	TotalFat         float64          `json:"total_fat"`
	MacroPercentages MacroPercentages `json:"macro_percentages"`
}

type dayTotals struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

// Daily computes the summary for one calendar day.
func (s *DashboardService) Daily(userID uint, date time.Time) (*DaySummary, error) {
	var summary *DaySummary
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}
		settings, err := getOrCreateSettings(tx, userID)
		if err != nil {
			return err
		}

		var meals []models.Meal
		if err := tx.
			Where("user_id = ? AND consumed_at >= ? AND consumed_at <= ?",
				userID, utils.DayStart(date), utils.DayEnd(date)).
			Find(&meals).Error; err != nil {
			return err
		}

		var totals dayTotals
		for _, m := range meals {
			totals.calories += m.Calories
			totals.protein += m.Protein
			totals.carbs += m.Carbs
			totals.fat += m.Fat
		}

		summary = serializeDay(date, settings.MetabolismBase, totals)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// Range computes one summary per calendar day in [startDate, endDate]
// inclusive, ascending, zero-filled for days without meals. The whole
// window is read in one query and bucketed by day.
func (s *DashboardService) Range(userID uint, startDate, endDate time.Time) ([]DaySummary, error) {
	start, end, err := utils.RangeBounds(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var summaries []DaySummary
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}
		settings, err := getOrCreateSettings(tx, userID)
		if err != nil {
			return err
		}

		var meals []models.Meal
		if err := tx.
			Where("user_id = ? AND consumed_at >= ? AND consumed_at <= ?", userID, start, end).
			Find(&meals).Error; err != nil {
			return err
		}

		byDay := make(map[string]*dayTotals)
		for _, m := range meals {
			key := m.ConsumedAt.Format(utils.DateLayout)
			totals, ok := byDay[key]
			if !ok {
				totals = &dayTotals{}
				byDay[key] = totals
			}
			totals.calories += m.Calories
			totals.protein += m.Protein
			totals.carbs += m.Carbs
			totals.fat += m.Fat
		}

		last := utils.DayStart(endDate)
		for d := utils.DayStart(startDate); !d.After(last); d = d.AddDate(0, 0, 1) {
			var totals dayTotals
			if t, ok := byDay[d.Format(utils.DateLayout)]; ok {
				totals = *t
			}
			summaries = append(summaries, *serializeDay(d, settings.MetabolismBase, totals))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// computeMacroPercentages splits macro-attributable calories across the
// three macros with the Atwater factors (4 kcal/g protein and carbs,
// 9 kcal/g fat). Zero or negative macro calories yield exact zeros; no
// clamping when inputs are inconsistent.
func computeMacroPercentages(protein, carbs, fat float64) MacroPercentages {
	caloriesFromProtein := protein * 4
	caloriesFromCarbs := carbs * 4
	caloriesFromFat := fat * 9

	totalMacroCalories := caloriesFromProtein + caloriesFromCarbs + caloriesFromFat
	if totalMacroCalories <= 0 {
		return MacroPercentages{}
	}

	return MacroPercentages{
		ProteinPercent: (caloriesFromProtein / totalMacroCalories) * 100,
		CarbsPercent:   (caloriesFromCarbs / totalMacroCalories) * 100,
		FatPercent:     (caloriesFromFat / totalMacroCalories) * 100,
	}
}

func serializeDay(date time.Time, metabolismBase int, totals dayTotals) *DaySummary {
	return &DaySummary{
		Date:             date.Format(utils.DateLayout),
		TotalCalories:    totals.calories,
		MetabolismBase:   metabolismBase,
		Balance:          totals.calories - float64(metabolismBase),
		TotalProtein:     totals.protein,
		TotalCarbs:       totals.carbs,
		TotalFat:         totals.fat,
		MacroPercentages: computeMacroPercentages(totals.protein, totals.carbs, totals.fat),
	}
}
