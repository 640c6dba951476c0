package services

import (
	"context"
	"errors"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/repository"

	"go.uber.org/zap"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	userRepo   *repository.UserRepository
	log        *zap.Logger
}

func NewReviewService(reviews *repository.ReviewRepository, users *repository.UserRepository, log *zap.Logger) *ReviewService {
	return &ReviewService{reviewRepo: reviews, userRepo: users, log: log}
}

// AddReview requires a registered email but does not re-verify the
// password. The stored name comes from the user record, never the request.
func (s *ReviewService) AddReview(ctx context.Context, email, comment string) error {
	if email == "" || comment == "" {
		return apperr.Validation("Missing required fields")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, docstore.ErrNoDocument) {
		s.log.Error("review: user not found", zap.String("email", email))
		return apperr.Auth("User not authorized")
	}
	if err != nil {
		return apperr.Internal("Internal server error", err)
	}

	review := &entity.Review{Name: user.Name, Comment: comment}
	if err := s.reviewRepo.Append(ctx, review); err != nil {
		return apperr.Internal("Internal server error", err)
	}
	return nil
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]docstore.Document, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	return reviews, nil
}
