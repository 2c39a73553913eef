package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/emi-store-backend-go/middleware"
)

// SetupRoutes registers the catalog API. All routes are public and read-only.
func SetupRoutes(e *echo.Echo, products *handlers.ProductHandler, metrics *customMiddleware.Metrics) {
	e.GET("/", handlers.Root)
	e.GET("/health", handlers.Health)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	// Product routes; the static brands path wins over :slug
	api.GET("/products/brands", products.GetBrands)
	api.GET("/products", products.GetProducts)
	api.GET("/products/:slug", products.GetProductBySlug)
}
