package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	Settings *Settings `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Foods    []Food    `gorm:"foreignKey:CreatedByID" json:"-"`
	Meals    []Meal    `json:"-"`
}
