package controllers

import (
	"net/http"

	"github.com/Asian-Restaurant/backend/middlewares"
	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/pkg/resp"
	"github.com/Asian-Restaurant/backend/services"

	"github.com/gin-gonic/gin"
)

type SaveCartRequest struct {
	Items []services.SaveCartItem `json:"items"`
}

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// POST /cart
func (cc *CartController) Add(c *gin.Context) {
	var in services.AddToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, apperr.Validation("Invalid data"))
		return
	}

	cc.cart.Add(middlewares.CartKey(c), &in)
	resp.Message(c, http.StatusCreated, "Added to cart")
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	lines, err := cc.cart.Get(middlewares.CartKey(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, lines)
}

// POST /save_cart
func (cc *CartController) Save(c *gin.Context) {
	var req SaveCartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		resp.Error(c, apperr.Validation("Invalid data"))
		return
	}

	cart, err := cc.cart.SaveCart(c.Request.Context(), middlewares.CartKey(c), req.Items)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message": "Cart saved successfully",
		"cart":    cart,
	})
}
