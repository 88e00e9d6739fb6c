package repositories

import (
	"context"
	"errors"

	"finledger/internal/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user id or email already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// List retrieves a page of users in stable id order.
	List(ctx context.Context, offset, limit int) ([]models.User, error)

	// GetByID retrieves a user by its surrogate key.
	GetByID(ctx context.Context, id uint) (*models.User, error)

	// Create inserts a new user; the store assigns its ID. A violated unique
	// constraint on user_id or email surfaces as ErrDuplicateUser.
	Create(ctx context.Context, user *models.User) error

	// Save writes a full user row back to the store.
	Save(ctx context.Context, user *models.User) error

	// Delete removes a user permanently. The bool reports whether a row
	// existed.
	Delete(ctx context.Context, id uint) (bool, error)
}
