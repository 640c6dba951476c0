package services

import (
	"context"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/repository"
)

type DeliveryService struct {
	deliveryRepo *repository.DeliveryRepository
}

func NewDeliveryService(repo *repository.DeliveryRepository) *DeliveryService {
	return &DeliveryService{deliveryRepo: repo}
}

// SubmitDelivery checks that the required address keys are present and
// appends the payload verbatim. Values are not inspected, and extra
// fields are kept.
func (s *DeliveryService) SubmitDelivery(ctx context.Context, payload docstore.Document) error {
	for _, field := range entity.RequiredDeliveryFields {
		if _, ok := payload[field]; !ok {
			return apperr.Validation("Missing delivery details")
		}
	}

	if err := s.deliveryRepo.Append(ctx, payload); err != nil {
		return apperr.Internal("Internal server error", err)
	}
	return nil
}
