package routes

import (
	"github.com/Asian-Restaurant/backend/controllers"
	"github.com/Asian-Restaurant/backend/middlewares"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/repository"
	"github.com/Asian-Restaurant/backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes wires every endpoint against the given document store.
func RegisterRoutes(r *gin.Engine, store docstore.Store, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(store)
	catalogRepo := repository.NewCatalogRepository(store)
	reviewRepo := repository.NewReviewRepository(store)
	deliveryRepo := repository.NewDeliveryRepository(store)
	cartLineRepo := repository.NewCartLineRepository(store)

	// Services
	authSvc := services.NewAuthService(userRepo, log)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(services.NewCartStore(), cartLineRepo, log)
	reviewSvc := services.NewReviewService(reviewRepo, userRepo, log)
	deliverySvc := services.NewDeliveryService(deliveryRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)

	// Users
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.GET("/user", authCtrl.GetUser)

	// Catalog
	r.GET("/menu", catalogCtrl.Menu)
	r.GET("/dish", catalogCtrl.Dish)

	// Cart
	cart := r.Group("/", middlewares.CartKeyMiddleware())
	{
		cart.POST("/cart", cartCtrl.Add)
		cart.GET("/cart", cartCtrl.Get)
		cart.POST("/save_cart", cartCtrl.Save)
	}

	// Reviews & delivery
	r.POST("/reviews", reviewCtrl.Create)
	r.GET("/reviews", reviewCtrl.List)
	r.POST("/delivery", deliveryCtrl.Submit)
}
