package repository

import (
	"context"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
)

const reviewsCollection = "reviews"

type ReviewRepository struct{ Store docstore.Store }

func NewReviewRepository(store docstore.Store) *ReviewRepository {
	return &ReviewRepository{Store: store}
}

func (r *ReviewRepository) Append(ctx context.Context, review *entity.Review) error {
	return r.Store.Add(ctx, reviewsCollection, review.Doc())
}

func (r *ReviewRepository) List(ctx context.Context) ([]docstore.Document, error) {
	return r.Store.Stream(ctx, reviewsCollection)
}
