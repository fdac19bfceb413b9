package order

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstore/storefront/internal/catalog"
	"github.com/techstore/storefront/internal/models"
)

type stubResolver struct {
	products map[string]models.Product
	calls    int
}

func (r *stubResolver) Resolve(ctx context.Context, productID string) (models.Product, error) {
	r.calls++
	p, ok := r.products[productID]
	if !ok {
		return models.Product{}, catalog.ErrProductNotFound
	}
	return p, nil
}

func testForm() models.CheckoutForm {
	return models.CheckoutForm{
		Customer: models.Customer{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane.smith@example.com",
			Phone:     "+1 555 0100",
		},
		Shipping: models.ShippingAddress{
			Address: "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Country: "USA",
		},
		OrderNotes: "Leave at the door",
		Channel:    models.ChannelWhatsApp,
	}
}

func line(id, name, price string, qty int) models.CartLine {
	return models.CartLine{
		ProductID: id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestAssembleEmptyCartFails(t *testing.T) {
	resolver := &stubResolver{}
	assembler := NewAssembler(resolver, "TS")

	_, err := assembler.Assemble(context.Background(), nil, testForm())

	assert.ErrorIs(t, err, ErrEmptyCart)
	// The check happens before any reconciliation work.
	assert.Zero(t, resolver.calls)
}

func TestAssembleReconcilesAgainstLiveCatalog(t *testing.T) {
	resolver := &stubResolver{products: map[string]models.Product{
		"p1": {ID: "p1", Name: "Headphones v2", Price: decimal.RequireFromString("179.99"), Image: "headphones-v2.jpg"},
	}}
	assembler := NewAssembler(resolver, "TS")

	lines := []models.CartLine{line("p1", "Headphones", "199.99", 2)}
	record, err := assembler.Assemble(context.Background(), lines, testForm())
	require.NoError(t, err)

	require.Len(t, record.Items, 1)
	assert.Equal(t, "Headphones v2", record.Items[0].Name)
	assert.Equal(t, "179.99", record.Items[0].Price.String())
	assert.Equal(t, "headphones-v2.jpg", record.Items[0].Image)
	assert.Equal(t, 2, record.Items[0].Quantity)
	assert.Equal(t, "359.98", record.Total.String())

	// The caller's lines are untouched.
	assert.Equal(t, "199.99", lines[0].Price.String())
}

func TestAssembleVanishedProductKeepsSnapshot(t *testing.T) {
	assembler := NewAssembler(&stubResolver{}, "TS")

	lines := []models.CartLine{line("gone", "Discontinued Gadget", "49.99", 1)}
	record, err := assembler.Assemble(context.Background(), lines, testForm())
	require.NoError(t, err)

	require.Len(t, record.Items, 1)
	assert.Equal(t, "Discontinued Gadget", record.Items[0].Name)
	assert.Equal(t, "49.99", record.Items[0].Price.String())
	assert.Equal(t, "49.99", record.Total.String())
}

func TestAssembleCopiesFormAndMintsIdentity(t *testing.T) {
	assembler := NewAssembler(&stubResolver{}, "TS")
	assembler.now = func() time.Time { return time.UnixMilli(1700000000000) }
	assembler.randInt = func(n int) int { return 7 }

	form := testForm()
	record, err := assembler.Assemble(context.Background(), []models.CartLine{line("p1", "Gadget", "10", 1)}, form)
	require.NoError(t, err)

	assert.Equal(t, "TS-1700000000000-7", record.Number)
	assert.Equal(t, form.Customer, record.Customer)
	assert.Equal(t, form.Shipping, record.Shipping)
	assert.Equal(t, "Leave at the door", record.Notes)
	assert.NotEqual(t, record.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, time.UnixMilli(1700000000000), record.CreatedAt)
}

func TestOrderNumberFormat(t *testing.T) {
	assembler := NewAssembler(&stubResolver{}, "TS")

	record, err := assembler.Assemble(context.Background(), []models.CartLine{line("p1", "Gadget", "10", 1)}, testForm())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^TS-\d{13}-\d{1,3}$`), record.Number)
}

func TestOrderNumbersMintedFreshPerAssembly(t *testing.T) {
	assembler := NewAssembler(&stubResolver{}, "TS")
	millis := int64(1700000000000)
	assembler.now = func() time.Time { millis++; return time.UnixMilli(millis) }

	lines := []models.CartLine{line("p1", "Gadget", "10", 1)}
	first, err := assembler.Assemble(context.Background(), lines, testForm())
	require.NoError(t, err)
	second, err := assembler.Assemble(context.Background(), lines, testForm())
	require.NoError(t, err)

	assert.NotEqual(t, first.Number, second.Number)
	assert.NotEqual(t, first.ID, second.ID)
}
