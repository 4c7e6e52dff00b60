package service

import (
	"context"

	"bookreview-backend/internal/domains/review/model"
)

// Service holds the review business operations.
//
// List takes an optional book scope: a nil bookID lists every review, a
// non-nil one filters to that book's reviews after resolving the book (an
// unknown book is a not-found outcome, never an empty list).
type Service interface {
	List(ctx context.Context, bookID *int64) ([]model.Review, error)
	Get(ctx context.Context, id int64) (*model.Review, error)
	Create(ctx context.Context, req *model.ReviewRequest) (*model.Review, error)
	Replace(ctx context.Context, id int64, req *model.ReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, id int64) error
}
