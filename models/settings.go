package models

import "time"

// Settings holds a user's metabolic baseline and optional macro targets.
// At most one row per user; created lazily with defaults on first
// dashboard access if the user never configured anything.
type Settings struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	MetabolismBase int       `gorm:"not null;default:1770" json:"metabolism_base"`
	ProteinTarget  *int      `json:"protein_target"`
	CarbsTarget    *int      `json:"carbs_target"`
	FatTarget      *int      `json:"fat_target"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultMetabolismBase is the baseline daily energy expenditure assumed
// until the user configures their own.
const DefaultMetabolismBase = 1770
