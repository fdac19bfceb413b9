package models

import "github.com/shopspring/decimal"

// Product is a single catalog entry. The catalog is a read-only snapshot
// fetched once per session; products are never mutated by this service.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	Image         string          `json:"image"`
	Features      []string        `json:"features"`
	Featured      bool            `json:"featured"`
}

// Discounted reports whether the product carries a visible markdown.
func (p Product) Discounted() bool {
	return p.OriginalPrice.GreaterThan(p.Price)
}
