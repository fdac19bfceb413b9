package models

import "github.com/shopspring/decimal"

// CartLine is one product's entry in the cart. Name, price and image are a
// denormalized snapshot captured at add time so the cart stays displayable
// even if the catalog is unavailable. Quantity is always positive; a line
// whose quantity would drop to zero is removed instead.
type CartLine struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
