package controllers

import (
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/pkg/resp"
	"github.com/Asian-Restaurant/backend/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GET /menu
func (cc *CatalogController) Menu(c *gin.Context) {
	items, err := cc.catalog.ListMenu(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	if items == nil {
		items = []docstore.Document{}
	}
	resp.OK(c, items)
}

// GET /dish?dish_name=
func (cc *CatalogController) Dish(c *gin.Context) {
	dish, err := cc.catalog.GetDish(c.Request.Context(), c.Query("dish_name"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dish)
}
