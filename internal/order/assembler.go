// Package order turns a cart plus a checkout form into an immutable order
// record, reconciling each line against the live catalog on the way.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techstore/storefront/internal/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// Resolver looks up live catalog entries during reconciliation.
type Resolver interface {
	Resolve(ctx context.Context, productID string) (models.Product, error)
}

// Assembler builds order records. The clock and random source are injectable
// for tests; production wiring uses wall-clock time and math/rand.
type Assembler struct {
	resolver Resolver
	prefix   string
	now      func() time.Time
	randInt  func(n int) int
}

// NewAssembler creates an assembler minting order numbers with the given
// store prefix.
func NewAssembler(resolver Resolver, prefix string) *Assembler {
	return &Assembler{
		resolver: resolver,
		prefix:   prefix,
		now:      time.Now,
		randInt:  defaultRandInt,
	}
}

// Assemble validates that the cart is non-empty, reconciles every line
// against the live catalog, and returns an order record with a recomputed
// total and a freshly minted order number.
//
// Reconciliation treats the catalog as the source of truth at order time:
// a resolvable product overwrites the line's add-time name, price and image.
// A product that has vanished from the catalog keeps its stale snapshot as a
// best-effort fallback and never blocks checkout.
func (a *Assembler) Assemble(ctx context.Context, lines []models.CartLine, form models.CheckoutForm) (models.OrderRecord, error) {
	if len(lines) == 0 {
		return models.OrderRecord{}, ErrEmptyCart
	}

	now := a.now()

	items := make([]models.CartLine, len(lines))
	copy(items, lines)
	total := decimal.Zero
	for i := range items {
		if product, err := a.resolver.Resolve(ctx, items[i].ProductID); err == nil {
			items[i].Name = product.Name
			items[i].Price = product.Price
			items[i].Image = product.Image
		}
		total = total.Add(items[i].Subtotal())
	}

	return models.OrderRecord{
		ID:        uuid.New(),
		Number:    a.newOrderNumber(now),
		Customer:  form.Customer,
		Shipping:  form.Shipping,
		Notes:     form.OrderNotes,
		Items:     items,
		Total:     total,
		CreatedAt: now,
	}, nil
}
