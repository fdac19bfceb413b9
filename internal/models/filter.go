package models

// Sort keys accepted by the filter engine. Values match the storefront's
// sort selector options.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByRating    = "rating"
)

// FilterState captures the current search/filter/sort selection. It is
// re-evaluated on every change and never persisted.
type FilterState struct {
	Search     string `json:"search"`
	Category   string `json:"category"`
	PriceRange string `json:"priceRange"`
	SortBy     string `json:"sortBy"`
}
