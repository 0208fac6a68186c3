package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
)

type UserServiceInterface interface {
	Register(db *database.Database, name, email, password string) (models.User, error)
	GetUserById(db *database.Database, id uuid.UUID) (models.User, error)
}

type UserService struct {
	authService *AuthService
}

func NewUserService(authService *AuthService) *UserService {
	return &UserService{authService: authService}
}

func (s *UserService) Register(db *database.Database, name, email, password string) (models.User, error) {
	user := models.User{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(name),
		Email: normalizeEmail(email),
	}
	if err := validateRecord(&user); err != nil {
		return models.User{}, err
	}
	if len(password) < 6 {
		return models.User{}, NewValidationError("Password", "Password must be at least 6 characters")
	}

	var count int64
	if err := db.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrEmailTaken
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = hash

	if err := db.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id uuid.UUID) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var UserServiceInstance UserServiceInterface
