package repository

import (
	"context"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
)

const cartsCollection = "carts"

// CartLineRepository appends saved cart lines to the durable carts
// collection. There is no read path; the in-memory cart is authoritative
// for the running process.
type CartLineRepository struct{ Store docstore.Store }

func NewCartLineRepository(store docstore.Store) *CartLineRepository {
	return &CartLineRepository{Store: store}
}

func (r *CartLineRepository) Append(ctx context.Context, line *entity.CartLine) error {
	return r.Store.Add(ctx, cartsCollection, line.Doc())
}
