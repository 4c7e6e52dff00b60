package service

import (
	"context"

	authormodel "bookreview-backend/internal/domains/author/model"
	authorrepo "bookreview-backend/internal/domains/author/repository"
	"bookreview-backend/internal/domains/book/model"
	"bookreview-backend/internal/domains/book/repository"
	reviewrepo "bookreview-backend/internal/domains/review/repository"
)

type bookService struct {
	repo       repository.Repository
	authorRepo authorrepo.Repository
	reviewRepo reviewrepo.Repository
}

func NewBookService(repo repository.Repository, authorRepo authorrepo.Repository, reviewRepo reviewrepo.Repository) Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *bookService) List(ctx context.Context, authorID *int64) ([]model.Book, error) {
	if authorID == nil {
		return s.repo.GetAll(ctx)
	}

	// Scoped list: the author segment must resolve before filtering, so a
	// bad author id fails not-found instead of returning an empty list.
	exists, err := s.authorRepo.ExistsByID(ctx, *authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, authormodel.ErrAuthorNotFound
	}

	return s.repo.GetByAuthor(ctx, *authorID)
}

func (s *bookService) Get(ctx context.Context, id int64) (*model.BookDetail, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByBook(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.BookDetail{
		Book:    *b,
		Reviews: reviews,
	}, nil
}

func (s *bookService) Create(ctx context.Context, req *model.BookRequest) (*model.Book, error) {
	b, err := req.ToEntity()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, b)
}

func (s *bookService) Replace(ctx context.Context, id int64, req *model.BookRequest) (*model.Book, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	b, err := req.ToEntity()
	if err != nil {
		return nil, err
	}
	b.ID = id
	return s.repo.Update(ctx, b)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
