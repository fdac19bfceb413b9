// Package cart owns the persisted shopping cart. Every mutation writes
// through to storage and notifies change subscribers before returning, so
// the persisted snapshot, the in-memory lines, and any display stay in step.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/techstore/storefront/internal/models"
	"github.com/techstore/storefront/internal/notify"
	"github.com/techstore/storefront/internal/storage"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Resolver looks up live products for add-to-cart snapshots.
type Resolver interface {
	Resolve(ctx context.Context, productID string) (models.Product, error)
}

// Summary is the derived cart state pushed to change subscribers.
type Summary struct {
	Count int
	Total decimal.Decimal
}

// Store holds the cart lines for a single interactive session. It is safe
// for use from concurrent handlers, but offers no cross-process locking:
// two processes sharing one storage file race last-write-wins.
type Store struct {
	storage  storage.Store
	key      string
	resolver Resolver
	notifier notify.Notifier
	log      logrus.FieldLogger

	mu          sync.Mutex
	lines       []models.CartLine
	subscribers []func(Summary)
}

// NewStore creates a cart store and loads the persisted snapshot.
func NewStore(st storage.Store, key string, resolver Resolver, notifier notify.Notifier, log logrus.FieldLogger) *Store {
	s := &Store{
		storage:  st,
		key:      key,
		resolver: resolver,
		notifier: notifier,
		log:      log,
	}
	s.Load()
	return s
}

// Load replaces the in-memory lines with the persisted snapshot. Missing or
// corrupt data initializes an empty cart; Load never fails outward.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	data, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.log.WithError(err).Error("failed to load cart, starting empty")
		return
	}
	if !ok {
		return
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.log.WithError(err).Warn("corrupt cart snapshot, starting empty")
		return
	}
	for _, line := range lines {
		if line.Quantity > 0 {
			s.lines = append(s.lines, line)
		}
	}
}

// OnChange registers a subscriber called after every mutation.
func (s *Store) OnChange(fn func(Summary)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Add resolves the product and merges quantity into an existing line, or
// appends a new line with a snapshot of the product's current name, price
// and image. The cart is left untouched on any error.
func (s *Store) Add(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	product, err := s.resolver.Resolve(ctx, productID)
	if err != nil {
		s.notifier.Error("Product not found!")
		return fmt.Errorf("failed to add product %s: %w", productID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if line := s.find(productID); line != nil {
		line.Quantity += quantity
	} else {
		s.lines = append(s.lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	s.persist()
	s.changed()
	s.notifier.Success("Product added to cart!")
	return nil
}

// SetQuantity updates a line's quantity in place. A non-positive quantity
// removes the line; an absent product id is a no-op, not an error.
func (s *Store) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.find(productID)
	if line == nil {
		return
	}
	line.Quantity = quantity

	s.persist()
	s.changed()
}

// Remove deletes the line for productID if present.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			s.changed()
			s.notifier.Success("Product removed from cart!")
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
	s.changed()
	s.notifier.Success("Cart cleared!")
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Total is the sum of price times quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

// Count is the sum of all line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

// Len is the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

func (s *Store) find(productID string) *models.CartLine {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return &s.lines[i]
		}
	}
	return nil
}

func (s *Store) total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func (s *Store) count() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// persist writes the current lines through to storage. A write failure is
// reported but does not roll back the in-memory state: the session's copy
// stays authoritative, as with a full localStorage in the browser.
func (s *Store) persist() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		s.log.WithError(err).Error("failed to marshal cart")
		return
	}
	if err := s.storage.Set(s.key, data); err != nil {
		s.log.WithError(err).Error("failed to save cart")
		s.notifier.Error("Failed to save your cart!")
	}
}

func (s *Store) changed() {
	summary := Summary{Count: s.count(), Total: s.total()}
	for _, fn := range s.subscribers {
		fn(summary)
	}
}
