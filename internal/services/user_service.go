// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bicyclezen/bicyclezen-backend/internal/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// UpsertUser patches the user record keyed by email; a nil name means the
// body omitted it and the stored value stays. The role is never touched here;
// elevation is a separate privileged operation.
func (s *UserService) UpsertUser(email string, name *string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch user: %w", err)
		}
		user = models.User{Email: email}
		if name != nil {
			user.Name = *name
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, nil
	}

	if name != nil {
		user.Name = *name
	}
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// IsAdmin treats an unknown email as a plain non-admin.
func (s *UserService) IsAdmin(email string) (bool, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user.IsAdmin(), nil
}

// PromoteToAdmin updates an existing record only; there is no upsert on the
// elevation path. Returns how many rows matched.
func (s *UserService) PromoteToAdmin(email string) (int64, error) {
	result := s.db.Model(&models.User{}).Where("email = ?", email).Update("role", models.RoleAdmin)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to promote user: %w", result.Error)
	}
	return result.RowsAffected, nil
}
