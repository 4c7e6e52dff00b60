package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bookreview-backend/internal/domains/user/model"
	"bookreview-backend/internal/domains/user/repository"
	"bookreview-backend/pkg/jwt"
)

const bcryptCost = 12

type userService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo repository.Repository, jwtManager *jwt.Manager) Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.ToEntity(string(hash)))
}

func (s *userService) ObtainTokenPair(ctx context.Context, req *model.TokenRequest) (*model.TokenPairResponse, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	access, err := s.jwtManager.GenerateAccessToken(u.ID, u.Username, u.IsStaff, u.IsSuperuser)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &model.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *userService) RefreshAccessToken(ctx context.Context, refreshToken string) (*model.AccessResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	userID, err := claims.SubjectID()
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	// Re-read the user so revoked accounts and changed role flags take
	// effect on refresh.
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	access, err := s.jwtManager.GenerateAccessToken(u.ID, u.Username, u.IsStaff, u.IsSuperuser)
	if err != nil {
		return nil, err
	}

	return &model.AccessResponse{Access: access}, nil
}

func (s *userService) Details(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}
