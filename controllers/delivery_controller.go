package controllers

import (
	"net/http"

	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/pkg/resp"
	"github.com/Asian-Restaurant/backend/services"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	delivery *services.DeliveryService
}

func NewDeliveryController(delivery *services.DeliveryService) *DeliveryController {
	return &DeliveryController{delivery: delivery}
}

// POST /delivery
func (dc *DeliveryController) Submit(c *gin.Context) {
	var payload docstore.Document
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.Error(c, apperr.Validation("Missing delivery details"))
		return
	}

	if err := dc.delivery.SubmitDelivery(c.Request.Context(), payload); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Delivery details saved")
}
