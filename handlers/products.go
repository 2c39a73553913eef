package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/store"
)

// ProductHandler serves the read-only catalog endpoints.
type ProductHandler struct {
	store   store.CatalogStore
	timeout time.Duration
}

func NewProductHandler(s store.CatalogStore, timeout time.Duration) *ProductHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ProductHandler{store: s, timeout: timeout}
}

func (h *ProductHandler) ctx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), h.timeout)
}

// GetBrands handles GET /api/products/brands
func (h *ProductHandler) GetBrands(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	brands, err := h.store.Brands(ctx)
	if err != nil {
		log.Printf("Failed to fetch brands: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, brands)
}

// GetProducts handles GET /api/products, optionally filtered by ?brand=
func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	products, err := h.store.List(ctx, c.QueryParam("brand"))
	if err != nil {
		log.Printf("Failed to fetch products: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, products)
}

// GetProductBySlug handles GET /api/products/:slug
func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	product, err := h.store.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		log.Printf("Failed to fetch product %q: %v", c.Param("slug"), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, product)
}

// Root is the API banner the storefront pings.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "EMI Store API is running"})
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
