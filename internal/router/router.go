package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	"github.com/mohamadfayez/apigee-marketplace/internal/handler"
	"github.com/mohamadfayez/apigee-marketplace/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	apiHubHandler *handler.APIHubHandler,
	dataGenHandler *handler.DataGenHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Swagger API documentation
	// Access at: http://localhost:8080/swagger/index.html
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API routes
	api := h.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.POST("/generate/spec", productHandler.GenerateSpec)
			products.GET("/:id", productHandler.Get)
			products.GET("/:id/spec", productHandler.GetSpec)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Add)
			categories.DELETE("/:id", categoryHandler.Remove)
		}

		api.POST("/datagen", dataGenHandler.Run)
		api.GET("/apihub", apiHubHandler.List)
	}
}
