package main

import (
	"context"
	"fmt"

	"github.com/Asian-Restaurant/backend/configs"
	"github.com/Asian-Restaurant/backend/middlewares"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
	"github.com/Asian-Restaurant/backend/pkg/logger"
	"github.com/Asian-Restaurant/backend/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	log := logger.NewForEnvironment(cfg.Env)
	defer log.Sync()

	// Firestore
	ctx := context.Background()
	if err := configs.ConnectFirestore(ctx, cfg); err != nil {
		log.Fatal("firestore connection failed", zap.Error(err))
	}
	store := docstore.NewFirestore(configs.Firestore(), docstore.Options{
		Timeout:       cfg.StoreTimeout,
		RetryAttempts: cfg.StoreRetryAttempts,
		RetryDelay:    cfg.StoreRetryDelay,
	})

	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, store, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
