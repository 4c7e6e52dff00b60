package repository

import (
	"context"

	"bookreview-backend/internal/domains/review/model"
)

// Repository is the review slice of the entity store. All reads join the
// parent book and the reviewing user, so BookTitle and Username are always
// populated on returned entities.
type Repository interface {
	// Create inserts a new review; the store assigns id and created_at.
	// Errors: ErrInvalidBook, ErrInvalidUser.
	Create(ctx context.Context, rv *model.Review) (*model.Review, error)

	// GetByID returns ErrReviewNotFound if the id does not resolve.
	GetByID(ctx context.Context, id int64) (*model.Review, error)

	// GetAll returns every review, unpaginated, in insertion order.
	GetAll(ctx context.Context) ([]model.Review, error)

	// GetByBook returns the given book's reviews in insertion order. Caller
	// is responsible for resolving the book first.
	GetByBook(ctx context.Context, bookID int64) ([]model.Review, error)

	// Update replaces book, user, rating and review_text; created_at is
	// immutable. Errors: ErrReviewNotFound, ErrInvalidBook, ErrInvalidUser.
	Update(ctx context.Context, rv *model.Review) (*model.Review, error)

	// Delete removes the review.
	Delete(ctx context.Context, id int64) error
}
