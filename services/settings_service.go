package services

import (
	"errors"

	"github.com/Fayets/NutriFA/apperror"
	"github.com/Fayets/NutriFA/models"

	"gorm.io/gorm"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// SettingsInput carries the caller-supplied fields. Nil means "not
// provided"; Create treats that as "clear", Update as "leave unchanged".
type SettingsInput struct {
	MetabolismBase *int `json:"metabolism_base"`
	ProteinTarget  *int `json:"protein_target"`
	CarbsTarget    *int `json:"carbs_target"`
	FatTarget      *int `json:"fat_target"`
}

// Create upserts the user's settings: a fresh row when none exists,
// otherwise a full overwrite with the supplied values.
func (s *SettingsService) Create(userID uint, in SettingsInput) (*models.Settings, error) {
	var settings *models.Settings
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}

		existing, err := getOrCreateSettings(tx, userID)
		if err != nil {
			return err
		}

		if in.MetabolismBase != nil {
			existing.MetabolismBase = *in.MetabolismBase
		} else if existing.MetabolismBase == 0 {
			existing.MetabolismBase = models.DefaultMetabolismBase
		}
		existing.ProteinTarget = in.ProteinTarget
		existing.CarbsTarget = in.CarbsTarget
		existing.FatTarget = in.FatTarget

		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		settings = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Get returns the user's settings, NotFound when they were never
// materialized (explicitly or by a dashboard read).
func (s *SettingsService) Get(userID uint) (*models.Settings, error) {
	if _, err := getUser(s.db, userID); err != nil {
		return nil, err
	}

	var settings models.Settings
	if err := s.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("settings")
		}
		return nil, err
	}
	return &settings, nil
}

// Update patches only the provided fields, creating the row with defaults
// first when the user has none.
func (s *SettingsService) Update(userID uint, in SettingsInput) (*models.Settings, error) {
	var settings *models.Settings
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}

		existing, err := getOrCreateSettings(tx, userID)
		if err != nil {
			return err
		}

		if in.MetabolismBase != nil {
			existing.MetabolismBase = *in.MetabolismBase
		}
		if in.ProteinTarget != nil {
			existing.ProteinTarget = in.ProteinTarget
		}
		if in.CarbsTarget != nil {
			existing.CarbsTarget = in.CarbsTarget
		}
		if in.FatTarget != nil {
			existing.FatTarget = in.FatTarget
		}

		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		settings = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// getOrCreateSettings lazily materializes default settings inside the
// caller's transaction. The unique index on user_id backstops concurrent
// first reads; a duplicate-key insert defers to the existing row.
func getOrCreateSettings(tx *gorm.DB, userID uint) (*models.Settings, error) {
	var settings models.Settings
	err := tx.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.Settings{
		UserID:         userID,
		MetabolismBase: models.DefaultMetabolismBase,
	}
	if err := tx.Create(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := tx.Where("user_id = ?", userID).First(&settings).Error; err != nil {
				return nil, err
			}
			return &settings, nil
		}
		return nil, err
	}
	return &settings, nil
}
