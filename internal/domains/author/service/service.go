package service

import (
	"context"

	"bookreview-backend/internal/domains/author/model"
	"bookreview-backend/internal/domains/author/repository"
)

type authorService struct {
	repo repository.Repository
}

func NewAuthorService(repo repository.Repository) Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) Get(ctx context.Context, id int64) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req *model.AuthorRequest) (*model.Author, error) {
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) Replace(ctx context.Context, id int64, req *model.AuthorRequest) (*model.Author, error) {
	// Resolve the target first so a missing id surfaces as not-found, not as
	// an upsert.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	a := req.ToEntity()
	a.ID = id
	return s.repo.Update(ctx, a)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
