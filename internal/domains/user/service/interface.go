package service

import (
	"context"

	"bookreview-backend/internal/domains/user/model"
)

// Service holds the user business operations: registration, credential
// exchange for a token pair, access-token refresh, and profile lookup.
type Service interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	ObtainTokenPair(ctx context.Context, req *model.TokenRequest) (*model.TokenPairResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*model.AccessResponse, error)
	Details(ctx context.Context, id int64) (*model.User, error)
}
