package repository

import (
	"context"

	"bookreview-backend/internal/domains/author/model"
)

// Repository is the author slice of the entity store.
type Repository interface {
	// Create inserts a new author and returns it with its assigned id.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID returns ErrAuthorNotFound if the id does not resolve.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// GetAll returns every author, unpaginated, ordered by id.
	GetAll(ctx context.Context) ([]model.Author, error)

	// Update fully replaces the author's fields.
	// Returns ErrAuthorNotFound if the id does not resolve.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes the author; owned books and their reviews go with it.
	// Returns ErrAuthorNotFound if the id does not resolve.
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
