package services

import (
	"errors"
	"strings"

	"github.com/Fayets/NutriFA/apperror"
	"github.com/Fayets/NutriFA/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db      *gorm.DB
	fetcher ProductFetcher
}

func NewFoodService(db *gorm.DB, fetcher ProductFetcher) *FoodService {
	return &FoodService{db: db, fetcher: fetcher}
}

type FoodCreateInput struct {
	Name            string  `json:"name" binding:"required"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	Barcode         *string `json:"barcode"`
}

type FoodUpdateInput struct {
	Name            *string  `json:"name"`
	CaloriesPer100g *float64 `json:"calories_per_100g"`
	ProteinPer100g  *float64 `json:"protein_per_100g"`
	CarbsPer100g    *float64 `json:"carbs_per_100g"`
	FatPer100g      *float64 `json:"fat_per_100g"`
	Barcode         *string  `json:"barcode"`
}

type FoodDeleteResult struct {
	ID      uint `json:"id"`
	Deleted bool `json:"deleted"`
}

func (s *FoodService) Create(userID uint, in FoodCreateInput) (*models.Food, error) {
	barcode := normalizeBarcode(in.Barcode)

	var food models.Food
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}

		if barcode != nil {
			var existing models.Food
			err := tx.Where("barcode = ?", *barcode).First(&existing).Error
			if err == nil {
				return apperror.Conflict("barcode is already registered")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		food = models.Food{
			Name:            in.Name,
			CaloriesPer100g: in.CaloriesPer100g,
			ProteinPer100g:  in.ProteinPer100g,
			CarbsPer100g:    in.CarbsPer100g,
			FatPer100g:      in.FatPer100g,
			Barcode:         barcode,
			CreatedByID:     &userID,
		}
		if err := tx.Create(&food).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("barcode is already registered")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) GetByID(foodID uint) (*models.Food, error) {
	return getFood(s.db, foodID)
}

func (s *FoodService) List() ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.Order("id ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// SearchByName is a case-insensitive substring match; an empty query
// returns the whole catalog.
func (s *FoodService) SearchByName(name string) ([]models.Food, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return s.List()
	}

	var foods []models.Food
	if err := s.db.
		Where("LOWER(name) LIKE ?", "%"+query+"%").
		Order("id ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// GetByBarcode looks up the local catalog only; it never calls the
// external collaborator.
func (s *FoodService) GetByBarcode(barcode string) (*models.Food, error) {
	var food models.Food
	if err := s.db.Where("barcode = ?", barcode).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("food")
		}
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Update(foodID, userID uint, in FoodUpdateInput) (*models.Food, error) {
	var food *models.Food
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := getFood(tx, foodID)
		if err != nil {
			return err
		}
		if err := checkFoodOwnership(existing, userID, "modified"); err != nil {
			return err
		}

		if in.Barcode != nil {
			barcode := normalizeBarcode(in.Barcode)
			if barcode != nil && (existing.Barcode == nil || *existing.Barcode != *barcode) {
				var other models.Food
				err := tx.Where("barcode = ? AND id <> ?", *barcode, existing.ID).First(&other).Error
				if err == nil {
					return apperror.Conflict("barcode is already registered")
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}
			existing.Barcode = barcode
		}
		if in.Name != nil {
			existing.Name = *in.Name
		}
		if in.CaloriesPer100g != nil {
			existing.CaloriesPer100g = *in.CaloriesPer100g
		}
		if in.ProteinPer100g != nil {
			existing.ProteinPer100g = *in.ProteinPer100g
		}
		if in.CarbsPer100g != nil {
			existing.CarbsPer100g = *in.CarbsPer100g
		}
		if in.FatPer100g != nil {
			existing.FatPer100g = *in.FatPer100g
		}

		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		food = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Delete(foodID, userID uint) (*FoodDeleteResult, error) {
	var result FoodDeleteResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := getFood(tx, foodID)
		if err != nil {
			return err
		}
		if err := checkFoodOwnership(existing, userID, "deleted"); err != nil {
			return err
		}
		if err := tx.Delete(&models.Food{}, existing.ID).Error; err != nil {
			return err
		}
		result = FoodDeleteResult{ID: existing.ID, Deleted: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ResolveBarcode returns the canonical Food for a barcode: the local row
// when one exists, otherwise the product fetched from the external
// database and persisted with no creator.
func (s *FoodService) ResolveBarcode(barcode string) (*models.Food, error) {
	barcode = strings.TrimSpace(barcode)
	if !isNumericBarcode(barcode) {
		return nil, apperror.InvalidInput("barcode must be numeric and between 8 and 20 digits")
	}

	// Local hit short-circuits the network call entirely.
	var existing models.Food
	err := s.db.Where("barcode = ?", barcode).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product, err := s.fetcher.FetchProduct(barcode)
	if err != nil {
		return nil, err
	}

	// Re-check inside the insert transaction: a concurrent resolution may
	// have landed the row while we were on the network. The existing row
	// wins and the fetched data is discarded.
	var food models.Food
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var raced models.Food
		err := tx.Where("barcode = ?", barcode).First(&raced).Error
		if err == nil {
			food = raced
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		food = models.Food{
			Name:            product.Name,
			CaloriesPer100g: product.CaloriesPer100g,
			ProteinPer100g:  product.ProteinPer100g,
			CarbsPer100g:    product.CarbsPer100g,
			FatPer100g:      product.FatPer100g,
			Barcode:         &barcode,
			CreatedByID:     nil,
		}
		return tx.Create(&food).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The recheck itself raced; whoever inserted first wins.
		if err := s.db.Where("barcode = ?", barcode).First(&food).Error; err != nil {
			return nil, err
		}
		return &food, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func getFood(tx *gorm.DB, foodID uint) (*models.Food, error) {
	var food models.Food
	if err := tx.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("food")
		}
		return nil, err
	}
	return &food, nil
}

// Foods without a creator (external-sourced) are editable by anyone;
// user-created foods only by their creator.
func checkFoodOwnership(food *models.Food, userID uint, action string) error {
	if food.CreatedByID != nil && *food.CreatedByID != userID {
		return apperror.Forbidden("only foods you created can be " + action)
	}
	return nil
}

func normalizeBarcode(barcode *string) *string {
	if barcode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*barcode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isNumericBarcode(barcode string) bool {
	if len(barcode) < 8 || len(barcode) > 20 {
		return false
	}
	for _, c := range barcode {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
