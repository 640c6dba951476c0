package controllers

import (
	"net/http"

	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/pkg/resp"
	"github.com/Asian-Restaurant/backend/services"

	"github.com/gin-gonic/gin"
)

type AddReviewRequest struct {
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// POST /reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.Validation("Missing required fields"))
		return
	}

	if err := rc.reviews.AddReview(c.Request.Context(), req.Email, req.Comment); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Review added")
}

// GET /reviews
func (rc *ReviewController) List(c *gin.Context) {
	reviews, err := rc.reviews.ListReviews(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	if reviews == nil {
		reviews = []docstore.Document{}
	}
	resp.OK(c, reviews)
}
