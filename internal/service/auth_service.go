package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/auth"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/errors"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/model"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/observability"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/storage"
)

const bcryptCost = 10

// AuthService handles citizen registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (user *model.User, accessToken, refreshToken string, err error)
}

type authService struct {
	store   storage.Store
	jwt     *auth.JWTService
	tokens  auth.TokenStore
	metrics *observability.Metrics
}

// NewAuthService creates an authentication service.
func NewAuthService(store storage.Store, jwt *auth.JWTService, tokens auth.TokenStore, metrics *observability.Metrics) AuthService {
	return &authService{store: store, jwt: jwt, tokens: tokens, metrics: metrics}
}

// Register creates a new user with a hashed password. Email uniqueness is
// enforced here; the store itself does not check it.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	existing, err := s.store.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrUserAlreadyExists
	}
	if err != nil && !stderrors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncUsersRegistered()
	return user, nil
}

// Login verifies credentials and issues access and refresh tokens. An unknown
// email and a wrong password both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		s.metrics.IncLoginFailures()
		return nil, "", "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.metrics.IncLoginFailures()
		return nil, "", "", errors.ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwt.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.tokens.StoreRefreshToken(ctx, tokenID, user.ID, user.Email, auth.RefreshTokenExpiry); err != nil {
		return nil, "", "", fmt.Errorf("store refresh token: %w", err)
	}

	return user, accessToken, refreshToken, nil
}
