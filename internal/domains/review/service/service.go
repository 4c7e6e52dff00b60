package service

import (
	"context"

	bookmodel "bookreview-backend/internal/domains/book/model"
	bookrepo "bookreview-backend/internal/domains/book/repository"
	"bookreview-backend/internal/domains/review/model"
	"bookreview-backend/internal/domains/review/repository"
)

type reviewService struct {
	repo     repository.Repository
	bookRepo bookrepo.Repository
}

func NewReviewService(repo repository.Repository, bookRepo bookrepo.Repository) Service {
	return &reviewService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

func (s *reviewService) List(ctx context.Context, bookID *int64) ([]model.Review, error) {
	if bookID == nil {
		return s.repo.GetAll(ctx)
	}

	// Scoped list: the book segment must resolve before filtering, so a bad
	// book id fails not-found instead of returning an empty list.
	exists, err := s.bookRepo.ExistsByID(ctx, *bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, bookmodel.ErrBookNotFound
	}

	return s.repo.GetByBook(ctx, *bookID)
}

func (s *reviewService) Get(ctx context.Context, id int64) (*model.Review, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *reviewService) Create(ctx context.Context, req *model.ReviewRequest) (*model.Review, error) {
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *reviewService) Replace(ctx context.Context, id int64, req *model.ReviewRequest) (*model.Review, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	rv := req.ToEntity()
	rv.ID = id
	return s.repo.Update(ctx, rv)
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
