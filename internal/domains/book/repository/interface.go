package repository

import (
	"context"

	"bookreview-backend/internal/domains/book/model"
)

// Repository is the book slice of the entity store. All reads join the
// owning author so AuthorName is always populated.
type Repository interface {
	// Create inserts a new book.
	// Errors: ErrDuplicateISBN, ErrInvalidAuthor.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID returns ErrBookNotFound if the id does not resolve.
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// GetAll returns every book, unpaginated, ordered by id.
	GetAll(ctx context.Context) ([]model.Book, error)

	// GetByAuthor returns the given author's books. Caller is responsible
	// for resolving the author first; an unknown id yields an empty slice.
	GetByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)

	// Update fully replaces the book's fields.
	// Errors: ErrBookNotFound, ErrDuplicateISBN, ErrInvalidAuthor.
	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	// Delete removes the book; its reviews go with it.
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
