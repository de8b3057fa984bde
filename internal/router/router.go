package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/service"
)

// SetupRouter configures the application routes.
func SetupRouter(kitchen *service.KitchenService, catalog service.RecipeCatalog, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		api.NewKitchenHandler(kitchen).RegisterRoutes(v1)
		api.NewRecipeHandler(kitchen, catalog).RegisterRoutes(v1)
		api.NewShoppingHandler(kitchen).RegisterRoutes(v1)
	}

	return router
}
