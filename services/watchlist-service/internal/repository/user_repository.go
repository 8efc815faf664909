package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"gorm.io/gorm"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository with the given GORM DB instance.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if err := conn(ctx, r.db).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewValidationError("Email or username already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := conn(ctx, r.db).First(&user, id).Error; err != nil {
		return nil, notFoundAsNil("user", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := conn(ctx, r.db).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundAsNil("user", err)
	}
	return &user, nil
}

// FindByEmailOrUsername returns any user holding either the email or the username.
func (r *userRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	var user domain.User
	if err := conn(ctx, r.db).Where("email = ? OR username = ?", email, username).First(&user).Error; err != nil {
		return nil, notFoundAsNil("user", err)
	}
	return &user, nil
}

// Delete removes a user by ID. Owned movies go with it through the foreign key cascade.
func (r *userRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := conn(ctx, r.db).Delete(&domain.User{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete user: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// notFoundAsNil turns gorm.ErrRecordNotFound into a nil error so callers get (nil, nil).
func notFoundAsNil(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}
