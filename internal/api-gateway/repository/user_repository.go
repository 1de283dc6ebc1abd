package repository

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// UserRepository is the read side of the user directory. Accounts are managed by the auth service.
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func (u *userRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	result := u.db.WithContext(ctx).Preload("Roles").First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("UserRepository.GetUserByUsername: %w", apperrors.ErrUserNotFound)
		}
		return user, fmt.Errorf("UserRepository.GetUserByUsername: %w", result.Error)
	}
	return user, nil
}

func (u *userRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	var user model.User
	result := u.db.WithContext(ctx).Preload("Roles").First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("UserRepository.GetUserByID: %w", apperrors.ErrUserNotFound)
		}
		return user, fmt.Errorf("UserRepository.GetUserByID: %w", result.Error)
	}
	return user, nil
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}
