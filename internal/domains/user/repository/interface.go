package repository

import (
	"context"

	"bookreview-backend/internal/domains/user/model"
)

// Repository is the user slice of the entity store.
type Repository interface {
	// Create inserts a new user with a pre-hashed password.
	// Errors: ErrDuplicateUsername.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// GetByID returns ErrUserNotFound if the id does not resolve.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByUsername returns ErrUserNotFound if the username does not resolve.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
