package service

import (
	"context"

	"bookreview-backend/internal/domains/author/model"
)

// Service holds the author business operations. Replace is resolve-then-apply:
// the target id is looked up before the new representation is written.
type Service interface {
	List(ctx context.Context) ([]model.Author, error)
	Get(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, req *model.AuthorRequest) (*model.Author, error)
	Replace(ctx context.Context, id int64, req *model.AuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id int64) error
}
