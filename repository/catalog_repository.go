package repository

import (
	"context"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
)

const (
	menuCollection   = "menu"
	dishesCollection = "dishes"
)

// CatalogRepository reads the externally managed menu and dishes
// collections; nothing here writes.
type CatalogRepository struct{ Store docstore.Store }

func NewCatalogRepository(store docstore.Store) *CatalogRepository {
	return &CatalogRepository{Store: store}
}

// ListMenu returns every menu document verbatim. Order follows storage
// iteration and must be treated as arbitrary.
func (r *CatalogRepository) ListMenu(ctx context.Context) ([]docstore.Document, error) {
	return r.Store.Stream(ctx, menuCollection)
}

// FindDish matches the dish_name field exactly, case-sensitive.
func (r *CatalogRepository) FindDish(ctx context.Context, dishName string) (*entity.Dish, error) {
	doc, err := r.Store.FindByField(ctx, dishesCollection, "dish_name", dishName)
	if err != nil {
		return nil, err
	}
	return entity.DishFromDoc(doc), nil
}
