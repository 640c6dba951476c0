package services

import (
	"context"
	"errors"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/repository"
	"github.com/Asian-Restaurant/backend/utils"

	"go.uber.org/zap"
)

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	userRepo *repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(repo *repository.UserRepository, log *zap.Logger) *AuthService {
	return &AuthService{userRepo: repo, log: log}
}

// Register creates a user keyed by email. Name is optional; email, phone
// and password are required.
func (s *AuthService) Register(ctx context.Context, name, email, phone, password string) error {
	if email == "" || phone == "" || password == "" {
		return apperr.Validation("Missing required fields")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return apperr.Internal("Internal server error", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return apperr.Conflict("User already exists")
		}
		return apperr.Internal("Internal server error", err)
	}
	return nil
}

// Login verifies credentials. Success carries no token or session; the
// caller only learns that the pair was valid.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return apperr.Validation("Missing email or password")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, docstore.ErrNoDocument) {
		return apperr.Auth("Invalid credentials")
	}
	if err != nil {
		s.log.Error("login: user lookup failed", zap.String("email", email), zap.Error(err))
		return apperr.Internal("Internal server error", err)
	}

	if !utils.VerifyPassword(user.Password, password) {
		return apperr.Auth("Invalid credentials")
	}
	return nil
}

// GetUser returns the public profile fields; the password hash is withheld.
func (s *AuthService) GetUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, docstore.ErrNoDocument) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	return user, nil
}
