package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/emi-store-backend-go/middleware"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/store"
)

type memStore struct{ products []models.Product }

func (m *memStore) Brands(ctx context.Context) ([]string, error) { return []string{"Google"}, nil }

func (m *memStore) List(ctx context.Context, brand string) ([]models.Product, error) {
	return m.products, nil
}

func (m *memStore) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for i := range m.products {
		if m.products[i].Slug == slug {
			return &m.products[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) ReplaceAll(ctx context.Context, products []models.Product) (int, error) {
	m.products = products
	return len(products), nil
}

func setupEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	metrics := customMiddleware.NewMetrics()
	e.Use(customMiddleware.RequestID())
	e.Use(metrics.Middleware())
	s := &memStore{products: []models.Product{{Name: "Pixel 9 Pro", Slug: "google-pixel-9-pro", Brand: "Google"}}}
	SetupRoutes(e, handlers.NewProductHandler(s, time.Second), metrics)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestBrandsRouteIsNotASlug(t *testing.T) {
	rec := get(setupEcho(t), "/api/products/brands")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Google"]`, rec.Body.String())
}

func TestSlugRoute(t *testing.T) {
	e := setupEcho(t)
	rec := get(e, "/api/products/google-pixel-9-pro")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = get(e, "/api/products/iphone-17-pro")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsExposeRouteTemplates(t *testing.T) {
	e := setupEcho(t)
	get(e, "/api/products/google-pixel-9-pro")
	get(e, "/api/products/missing")

	rec := get(e, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `emistore_http_requests_total{method="GET",route="/api/products/:slug",status="200"} 1`)
	assert.Contains(t, body, `emistore_http_requests_total{method="GET",route="/api/products/:slug",status="404"} 1`)
}

func TestHealth(t *testing.T) {
	rec := get(setupEcho(t), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
