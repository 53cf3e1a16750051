package services

import (
	"errors"
	"time"

	"github.com/Fayets/NutriFA/apperror"
	"github.com/Fayets/NutriFA/models"
	"github.com/Fayets/NutriFA/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealCreateInput struct {
	FoodID        uint    `json:"food_id" binding:"required"`
	QuantityGrams float64 `json:"quantity_grams" binding:"required"`
}

// Create logs a consumption event. The nutrient fields are computed from
// the food's per-100g values once, here, and stored as a snapshot; later
// edits to the food do not touch existing meals.
func (s *MealService) Create(userID uint, in MealCreateInput) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}
		food, err := getFood(tx, in.FoodID)
		if err != nil {
			return err
		}

		factor := in.QuantityGrams / 100.0
		meal = models.Meal{
			UserID:        userID,
			FoodID:        food.ID,
			QuantityGrams: in.QuantityGrams,
			Calories:      food.CaloriesPer100g * factor,
			Protein:       food.ProteinPer100g * factor,
			Carbs:         food.CarbsPer100g * factor,
			Fat:           food.FatPer100g * factor,
			ConsumedAt:    time.Now(),
		}
		return tx.Create(&meal).Error
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListRange returns the user's meals with consumed_at inside the
// inclusive [startDate, endDate] window.
func (s *MealService) ListRange(userID uint, startDate, endDate time.Time) ([]models.Meal, error) {
	start, end, err := utils.RangeBounds(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if _, err := getUser(s.db, userID); err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND consumed_at >= ? AND consumed_at <= ?", userID, start, end).
		Order("consumed_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// Delete removes one of the caller's meals. A meal that exists but
// belongs to someone else is reported exactly like a missing one.
func (s *MealService) Delete(mealID, userID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("meal")
			}
			return err
		}
		return tx.Delete(&models.Meal{}, meal.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}
