package services

import (
	"errors"
	"strings"
	"time"
	"venuefinder-backend/models"
	"venuefinder-backend/utils"

	"gorm.io/gorm"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	DB *gorm.DB
}

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FullName  string `json:"full_name"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// Register validates the input against the password policy, then creates
// the user. All validation runs before the insert; the unique indexes on
// username and email are the arbiter for concurrent registrations.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if input.Password != input.Password2 {
		return nil, &ValidationError{Field: "password", Message: "Password fields didn't match"}
	}
	if err := utils.ValidatePassword(input.Password); err != nil {
		return nil, &ValidationError{Field: "password", Message: err.Error()}
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	var existing models.User
	err := s.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		FullName: input.FullName,
		Password: input.Password, // hashed in BeforeCreate
		IsActive: true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// The pre-check races with concurrent registrations; the unique
		// index turns the loser's insert into a duplicate-key error.
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies username/password and returns the user. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	now := time.Now()
	s.DB.Model(&user).Update("last_login", &now)

	return &user, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
