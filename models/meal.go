package models

import "time"

// Meal records one consumption event. The four nutrient fields are a
// snapshot computed from the referenced Food at creation time; later edits
// to the Food never change them.
type Meal struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	FoodID        uint      `gorm:"index;not null" json:"food_id"`
	QuantityGrams float64   `gorm:"not null" json:"quantity_grams"`
	Calories      float64   `gorm:"not null" json:"calories"`
	Protein       float64   `gorm:"not null" json:"protein"`
	Carbs         float64   `gorm:"not null" json:"carbs"`
	Fat           float64   `gorm:"not null" json:"fat"`
	ConsumedAt    time.Time `gorm:"index;not null" json:"consumed_at"`
}
