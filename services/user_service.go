package services

import (
	"errors"
	"time"

	"github.com/Fayets/NutriFA/apperror"
	"github.com/Fayets/NutriFA/models"
	"github.com/Fayets/NutriFA/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserInfo is the serialized user record; the password hash never leaves
// the service layer.
type UserInfo struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func userInfo(u *models.User) *UserInfo {
	return &UserInfo{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

func (s *UserService) Register(username, password string) (*UserInfo, error) {
	if username == "" || password == "" {
		return nil, apperror.InvalidInput("username and password are required")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, PasswordHash: hash}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("username is already registered")
		}
		return nil, err
	}

	return userInfo(&user), nil
}

// Login verifies credentials. The same failure is reported whether the
// user is missing or the password is wrong.
func (s *UserService) Login(username, password string) (*UserInfo, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthenticated("invalid username or password")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperror.Unauthenticated("invalid username or password")
	}

	return userInfo(&user), nil
}

func (s *UserService) GetByID(userID uint) (*UserInfo, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, err
	}
	return userInfo(&user), nil
}

// getUser resolves a user inside an open transaction, mapping a miss to
// the standard NotFound kind.
func getUser(tx *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, err
	}
	return &user, nil
}
