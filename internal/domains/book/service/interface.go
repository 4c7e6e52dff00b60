package service

import (
	"context"

	"bookreview-backend/internal/domains/book/model"
)

// Service holds the book business operations.
//
// List takes an optional author scope: a nil authorID lists every book, a
// non-nil one filters to that author's books after resolving the author (an
// unknown author is a not-found outcome, never an empty list).
type Service interface {
	List(ctx context.Context, authorID *int64) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.BookDetail, error)
	Create(ctx context.Context, req *model.BookRequest) (*model.Book, error)
	Replace(ctx context.Context, id int64, req *model.BookRequest) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}
