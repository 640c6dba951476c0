package services

import (
	"context"
	"errors"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/repository"
)

// CatalogService exposes the read-only menu and dish lookups.
type CatalogService struct {
	catalogRepo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: repo}
}

func (s *CatalogService) ListMenu(ctx context.Context) ([]docstore.Document, error) {
	items, err := s.catalogRepo.ListMenu(ctx)
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	return items, nil
}

func (s *CatalogService) GetDish(ctx context.Context, dishName string) (*entity.Dish, error) {
	dish, err := s.catalogRepo.FindDish(ctx, dishName)
	if errors.Is(err, docstore.ErrNoDocument) {
		return nil, apperr.NotFound("Dish not found")
	}
	if err != nil {
		return nil, apperr.Internal("Internal server error", err)
	}
	return dish, nil
}
