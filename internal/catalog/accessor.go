// Package catalog owns the read-only product snapshot for a session and the
// search/filter/sort pipeline applied over it.
package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/techstore/storefront/internal/models"
)

var (
	ErrSourceUnavailable = errors.New("catalog source unavailable")
	ErrProductNotFound   = errors.New("product not found")
)

// featuredLimit caps the featured-products strip on the landing page.
const featuredLimit = 4

// Accessor fetches the catalog once per session and serves the cached
// snapshot afterwards. A failed fetch degrades to an empty catalog: the
// failure is remembered, logged, and never retried, so the rest of the
// storefront keeps working with an empty grid.
type Accessor struct {
	source Source
	log    logrus.FieldLogger

	mu       sync.Mutex
	loaded   bool
	loadErr  error
	products []models.Product
	byID     map[string]models.Product
}

// NewAccessor creates a catalog accessor over the given source.
func NewAccessor(source Source, log logrus.FieldLogger) *Accessor {
	return &Accessor{source: source, log: log}
}

// Load returns the catalog snapshot, fetching it on the first call only.
func (a *Accessor) Load(ctx context.Context) []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensureLoaded(ctx)
	return a.products
}

// Resolve looks up a product by id in the session snapshot.
func (a *Accessor) Resolve(ctx context.Context, productID string) (models.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensureLoaded(ctx)

	product, ok := a.byID[productID]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}

// Featured returns up to four featured products in catalog order.
func (a *Accessor) Featured(ctx context.Context) []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensureLoaded(ctx)

	featured := make([]models.Product, 0, featuredLimit)
	for _, p := range a.products {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == featuredLimit {
			break
		}
	}
	return featured
}

// Err reports whether the session's single fetch attempt failed.
func (a *Accessor) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.loaded {
		return nil
	}
	return a.loadErr
}

func (a *Accessor) ensureLoaded(ctx context.Context) {
	if a.loaded {
		return
	}
	a.loaded = true

	products, err := a.source.Fetch(ctx)
	if err != nil {
		a.log.WithError(err).Warn("catalog fetch failed, serving empty catalog")
		a.loadErr = ErrSourceUnavailable
		products = nil
	}

	a.products = products
	a.byID = make(map[string]models.Product, len(products))
	for _, p := range products {
		a.byID[p.ID] = p
	}
}
