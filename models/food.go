package models

import "time"

// Food is a catalog entry with per-100g nutritional values.
// Barcode is globally unique when present. A nil CreatedByID marks foods
// sourced from the external product database rather than a user.
type Food struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	CaloriesPer100g float64   `gorm:"not null" json:"calories_per_100g"`
	ProteinPer100g  float64   `gorm:"not null" json:"protein_per_100g"`
	CarbsPer100g    float64   `gorm:"not null" json:"carbs_per_100g"`
	FatPer100g      float64   `gorm:"not null" json:"fat_per_100g"`
	Barcode         *string   `gorm:"uniqueIndex" json:"barcode"`
	CreatedByID     *uint     `gorm:"index" json:"created_by_id"`
	CreatedAt       time.Time `json:"created_at"`

	Meals []Meal `json:"-"`
}
