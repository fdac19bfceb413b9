package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/techstore/storefront/internal/models"
)

// Apply runs the filter pipeline over products and returns a freshly
// allocated, display-ordered subset. The input is never mutated. Predicates
// run in order search, category, price range; all active filters must pass.
// Sorting happens after filtering and is stable, so ties keep catalog order.
func Apply(products []models.Product, state models.FilterState) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, state) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, state.SortBy)
	return filtered
}

func matches(p models.Product, state models.FilterState) bool {
	if state.Search != "" {
		term := strings.ToLower(state.Search)
		text := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
		if !strings.Contains(text, term) {
			return false
		}
	}

	if state.Category != "" && p.Category != state.Category {
		return false
	}

	if state.PriceRange != "" {
		min, max, hasMax, ok := parsePriceRange(state.PriceRange)
		if ok {
			if p.Price.LessThan(min) {
				return false
			}
			if hasMax && p.Price.GreaterThan(max) {
				return false
			}
		}
	}

	return true
}

// parsePriceRange understands "min-max" with inclusive bounds and the
// open-ended "N+" form. An unparsable range deactivates the filter.
func parsePriceRange(priceRange string) (min, max decimal.Decimal, hasMax, ok bool) {
	if suffix, found := strings.CutSuffix(priceRange, "+"); found {
		min, err := decimal.NewFromString(suffix)
		if err != nil {
			return decimal.Zero, decimal.Zero, false, false
		}
		return min, decimal.Zero, false, true
	}

	parts := strings.SplitN(priceRange, "-", 2)
	if len(parts) != 2 {
		return decimal.Zero, decimal.Zero, false, false
	}
	min, errMin := decimal.NewFromString(parts[0])
	max, errMax := decimal.NewFromString(parts[1])
	if errMin != nil || errMax != nil {
		return decimal.Zero, decimal.Zero, false, false
	}
	return min, max, true, true
}

func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case models.SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case models.SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case models.SortByRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}
