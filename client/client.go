// Package client talks to the catalog API. The base address is injected at
// construction; an empty base keeps paths relative to the serving origin.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
)

// ErrNotFound matches a 404 from the API.
var ErrNotFound = errors.New("not found")

// APIError is returned for any response outside 200-299.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

type Client struct {
	base string
	http *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Brands(ctx context.Context) ([]string, error) {
	var brands []string
	if err := c.get(ctx, "/api/products/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// Products lists the catalog, filtered by brand unless brand is "" or "All".
func (c *Client) Products(ctx context.Context, brand string) ([]models.Product, error) {
	path := "/api/products"
	if brand != "" && brand != "All" {
		path += "?brand=" + url.QueryEscape(brand)
	}
	var products []models.Product
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(slug), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Surface cancellation as-is so callers can tell it apart from failures.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
