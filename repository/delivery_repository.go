package repository

import (
	"context"

	"github.com/Asian-Restaurant/backend/pkg/docstore"
)

const deliveryCollection = "delivery"

type DeliveryRepository struct{ Store docstore.Store }

func NewDeliveryRepository(store docstore.Store) *DeliveryRepository {
	return &DeliveryRepository{Store: store}
}

// Append stores the submitted payload verbatim, extra fields included.
func (r *DeliveryRepository) Append(ctx context.Context, payload docstore.Document) error {
	return r.Store.Add(ctx, deliveryCollection, payload)
}
