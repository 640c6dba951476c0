package services

import (
	"context"
	"testing"

	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMenu(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, "menu", docstore.Document{"dish_name": "Soup", "price": 5.0}))
	require.NoError(t, store.Add(ctx, "menu", docstore.Document{"dish_name": "Rice", "special": true}))

	svc := NewCatalogService(repository.NewCatalogRepository(store))

	items, err := svc.ListMenu(ctx)
	require.NoError(t, err)
	// records come back verbatim, schema untouched
	assert.Len(t, items, 2)
	assert.Equal(t, true, items[1]["special"])
}

func TestGetDish(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, "dishes", docstore.Document{
		"dish_name":   "Tom Yum",
		"description": "spicy soup",
		"image_url":   "http://img/tomyum.jpg",
		"price":       7.5,
		"weight":      300,
	}))

	svc := NewCatalogService(repository.NewCatalogRepository(store))

	dish, err := svc.GetDish(ctx, "Tom Yum")
	require.NoError(t, err)
	assert.Equal(t, "Tom Yum", dish.DishName)
	assert.Equal(t, "spicy soup", dish.Description)
	assert.Equal(t, 7.5, dish.Price)
	assert.Equal(t, 300, dish.Weight)

	// exact, case-sensitive match only
	_, err = svc.GetDish(ctx, "tom yum")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	_, err = svc.GetDish(ctx, "Tom")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
