package viewmodel

import (
	"context"
	"log"
	"sync"

	"github.com/go-faster/errors"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/client"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/models"
)

// ErrSuperseded is returned by a load whose result arrived after a newer load
// started. The result is discarded.
var ErrSuperseded = errors.New("load superseded")

type ProductFetcher interface {
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

type LoadStatus int

const (
	StatusIdle LoadStatus = iota
	StatusLoading
	StatusLoaded
	StatusAbsent
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusAbsent:
		return "absent"
	default:
		return "idle"
	}
}

type PageOption func(*pageConfig)

type pageConfig struct {
	logger  *log.Logger
	selOpts []SelectionOption
}

func WithLogger(l *log.Logger) PageOption {
	return func(c *pageConfig) { c.logger = l }
}

// WithSelectionOptions configures every Selection the page creates.
func WithSelectionOptions(opts ...SelectionOption) PageOption {
	return func(c *pageConfig) { c.selOpts = append(c.selOpts, opts...) }
}

func newPageConfig(opts []PageOption) pageConfig {
	cfg := pageConfig{logger: log.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ProductPage loads a product by slug and owns the Selection for it. A new
// Load cancels the one in flight; a response from a superseded load is ignored.
type ProductPage struct {
	fetcher ProductFetcher
	cfg     pageConfig

	mu        sync.Mutex
	token     loadToken
	status    LoadStatus
	slug      string
	selection *Selection
	closed    bool

	// settled and settledSlug track the last load that completed. A cancelled
	// load falls back to them.
	settled     LoadStatus
	settledSlug string
}

func NewProductPage(fetcher ProductFetcher, opts ...PageOption) *ProductPage {
	return &ProductPage{fetcher: fetcher, cfg: newPageConfig(opts)}
}

// Load fetches slug and, on success, resets the selection to its initial
// state. Not-found and failures leave the product absent; failures are logged.
// Cancellation is silent and leaves the page as it was.
func (p *ProductPage) Load(ctx context.Context, slug string) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	loadCtx, id := p.token.begin(ctx)
	p.status = StatusLoading
	p.slug = slug
	p.mu.Unlock()

	product, err := p.fetcher.ProductBySlug(loadCtx, slug)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || !p.token.current(id) {
		return ErrSuperseded
	}
	p.token.finish(id)

	switch {
	case err == nil:
		if verr := product.Validate(); verr != nil {
			p.cfg.logger.Printf("Discarding product %q: %v", slug, verr)
			p.setAbsent(slug)
			return verr
		}
		sel, serr := NewSelection(product, p.cfg.selOpts...)
		if serr != nil {
			p.setAbsent(slug)
			return serr
		}
		p.replaceSelection(sel)
		p.settle(StatusLoaded, slug)
		return nil
	case errors.Is(err, context.Canceled):
		p.status = p.settled
		p.slug = p.settledSlug
		return err
	case errors.Is(err, client.ErrNotFound):
		p.setAbsent(slug)
		return err
	default:
		p.cfg.logger.Printf("Failed to load product %q: %v", slug, err)
		p.setAbsent(slug)
		return err
	}
}

func (p *ProductPage) setAbsent(slug string) {
	p.replaceSelection(nil)
	p.settle(StatusAbsent, slug)
}

func (p *ProductPage) settle(status LoadStatus, slug string) {
	p.status = status
	p.slug = slug
	p.settled = status
	p.settledSlug = slug
}

func (p *ProductPage) replaceSelection(sel *Selection) {
	if p.selection != nil {
		p.selection.Close()
	}
	p.selection = sel
}

func (p *ProductPage) Status() LoadStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

func (p *ProductPage) Slug() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slug
}

// Selection is nil unless a product is loaded. It is also nil while a load is
// in flight, so no transition can happen before the load completes.
func (p *ProductPage) Selection() *Selection {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusLoaded {
		return nil
	}
	return p.selection
}

// Close aborts the load in flight and cancels any pending image transition.
func (p *ProductPage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.token.stop()
	p.replaceSelection(nil)
}
