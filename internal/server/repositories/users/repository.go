package users

import (
	"context"

	"github.com/medportal/authsvc/internal/server/models"
)

// Repository is the persistence contract for account rows.
type Repository interface {
	// Create inserts a new account. A duplicate email yields
	// common.ErrorAlreadyExists, enforced by the store's unique constraint
	// rather than application code.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the account with the given email or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the account with the given id or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
