// Package catalog resolves category/search filters into product lists.
// Filtering is fully delegated to the backend; the engine only builds
// queries, guards against stale responses, and caches the last good result.
package catalog

import (
	"context"
	"sync"

	"github.com/jolidon/olyst/internal/api"
	"github.com/jolidon/olyst/internal/logging"
	"github.com/jolidon/olyst/internal/models"
)

// Engine is the catalog query engine. Read paths degrade gracefully: a
// failed fetch keeps the previously displayed data and logs a warning,
// it is never surfaced as a fatal error.
type Engine struct {
	client api.Client
	log    logging.Logger

	mu         sync.Mutex
	seq        uint64
	products   []models.Product
	categories []models.Category
}

func NewEngine(client api.Client, log logging.Logger) *Engine {
	return &Engine{client: client, log: log.With("component", "catalog")}
}

// Query re-fetches the product list for the given filter and returns the
// currently displayed list. Each invocation supersedes the previous one:
// a response belonging to anything but the most recently issued filter is
// discarded, so a slow early request can never overwrite a newer result.
func (e *Engine) Query(ctx context.Context, filter api.ProductFilter) []models.Product {
	e.mu.Lock()
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	items, err := e.client.Products(ctx, filter)

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.seq {
		e.log.Debug(ctx, "discarding superseded product response",
			"seq", seq, "latest", e.seq)
		return e.productsLocked()
	}
	if err != nil {
		e.log.Warn(ctx, "product fetch failed, keeping previous list", "error", err)
		return e.productsLocked()
	}

	e.products = items
	return e.productsLocked()
}

// Products returns the currently displayed list without fetching.
func (e *Engine) Products() []models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.productsLocked()
}

func (e *Engine) productsLocked() []models.Product {
	out := make([]models.Product, len(e.products))
	copy(out, e.products)
	return out
}

// Categories fetches the full category set. On failure the previously
// fetched set is returned unchanged.
func (e *Engine) Categories(ctx context.Context) []models.Category {
	cats, err := e.client.Categories(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.log.Warn(ctx, "category fetch failed, keeping previous set", "error", err)
	} else {
		e.categories = cats
	}

	out := make([]models.Category, len(e.categories))
	copy(out, e.categories)
	return out
}

// Product fetches a single catalog entry by id. Unlike the list reads this
// is a direct lookup, so the error is returned to the caller.
func (e *Engine) Product(ctx context.Context, id string) (models.Product, error) {
	return e.client.Product(ctx, id)
}

// Featured returns the first limit items of an unfiltered listing,
// preserving server order. It is a convenience view over Query, not a
// separate backend concept.
func (e *Engine) Featured(ctx context.Context, limit int) []models.Product {
	items := e.Query(ctx, api.ProductFilter{})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
