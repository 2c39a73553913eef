package viewmodel

import (
	"context"
	"sync"

	"github.com/go-faster/errors"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/pricing"
)

// AllBrands is the filter entry that shows the whole catalog.
const AllBrands = "All"

type CatalogFetcher interface {
	Brands(ctx context.Context) ([]string, error)
	Products(ctx context.Context, brand string) ([]models.Product, error)
}

// Card is what the catalog grid shows for one product, derived from its first
// color and first storage tier.
type Card struct {
	Name         string
	Slug         string
	Brand        string
	IsNew        bool
	Image        string
	Size         string
	Price        int64
	MRP          int64
	Discount     int
	ShowDiscount bool
	MonthlyQuote int64
	HasQuote     bool
	ColorSwatch  []string
}

// NewCard reports false for products without a color or storage tier; those
// are not rendered.
func NewCard(p models.Product) (Card, bool) {
	if len(p.Colors) == 0 || len(p.StorageOptions) == 0 {
		return Card{}, false
	}
	storage := p.StorageOptions[0]
	c := Card{
		Name:  p.Name,
		Slug:  p.Slug,
		Brand: p.Brand,
		IsNew: p.IsNewProduct,
		Image: p.Colors[0].Image,
		Size:  storage.Size,
		Price: storage.Price,
		MRP:   storage.MRP,
	}
	if pct, ok := pricing.DiscountPercent(storage); ok {
		c.Discount = pct
		c.ShowDiscount = pct > 0
	}
	if plan, ok := pricing.BestMonthlyQuote(storage); ok {
		c.MonthlyQuote = plan.MonthlyAmount
		c.HasQuote = true
	}
	for _, color := range p.Colors {
		c.ColorSwatch = append(c.ColorSwatch, color.Hex)
	}
	return c, true
}

// CatalogPage holds the brand filter and the product grid. Changing the brand
// aborts the listing in flight.
type CatalogPage struct {
	fetcher CatalogFetcher
	cfg     pageConfig

	mu          sync.Mutex
	brandsToken loadToken
	listToken   loadToken
	brands      []string
	active      string
	shown       string
	products    []models.Product
	loading     bool
	closed      bool
}

func NewCatalogPage(fetcher CatalogFetcher, opts ...PageOption) *CatalogPage {
	return &CatalogPage{fetcher: fetcher, cfg: newPageConfig(opts), active: AllBrands, shown: AllBrands}
}

// LoadBrands fetches the brand list once for the filter bar.
func (c *CatalogPage) LoadBrands(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	loadCtx, id := c.brandsToken.begin(ctx)
	c.mu.Unlock()

	brands, err := c.fetcher.Brands(loadCtx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.brandsToken.current(id) {
		return ErrSuperseded
	}
	c.brandsToken.finish(id)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.cfg.logger.Printf("Failed to load brands: %v", err)
		}
		return err
	}
	c.brands = brands
	return nil
}

// SelectBrand makes brand the active filter and loads its products. On
// failure or cancellation the previous grid and its filter stay.
func (c *CatalogPage) SelectBrand(ctx context.Context, brand string) error {
	if brand == "" {
		brand = AllBrands
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.active = brand
	c.loading = true
	loadCtx, id := c.listToken.begin(ctx)
	c.mu.Unlock()

	products, err := c.fetcher.Products(loadCtx, brand)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.listToken.current(id) {
		return ErrSuperseded
	}
	c.listToken.finish(id)
	c.loading = false
	if err != nil {
		c.active = c.shown
		if !errors.Is(err, context.Canceled) {
			c.cfg.logger.Printf("Failed to load products for %q: %v", brand, err)
		}
		return err
	}
	c.products = products
	c.shown = brand
	return nil
}

// Filters is the filter bar: "All" followed by the API's brands.
func (c *CatalogPage) Filters() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{AllBrands}, c.brands...)
}

func (c *CatalogPage) ActiveBrand() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *CatalogPage) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *CatalogPage) Cards() []Card {
	c.mu.Lock()
	products := c.products
	c.mu.Unlock()

	cards := make([]Card, 0, len(products))
	for _, p := range products {
		if card, ok := NewCard(p); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Close aborts both loads.
func (c *CatalogPage) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.brandsToken.stop()
	c.listToken.stop()
}
