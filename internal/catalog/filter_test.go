package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstore/storefront/internal/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Zed Speaker", Description: "Room-filling sound", Category: "audio", Price: decimal.RequireFromString("5"), Rating: 4.1},
		{ID: "2", Name: "Ann Headphones", Description: "Noise cancelling", Category: "audio", Price: decimal.RequireFromString("9"), Rating: 4.5},
		{ID: "3", Name: "Action Camera", Description: "Waterproof 4K camera", Category: "cameras", Price: decimal.RequireFromString("299.99"), Rating: 4.4},
		{ID: "4", Name: "Power Bank", Description: "Fast charging", Category: "accessories", Price: decimal.RequireFromString("1000"), Rating: 4.7},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApplySortByName(t *testing.T) {
	got := Apply(testCatalog()[:2], models.FilterState{SortBy: models.SortByName})
	require.Len(t, got, 2)
	assert.Equal(t, "Ann Headphones", got[0].Name)
	assert.Equal(t, "Zed Speaker", got[1].Name)
}

func TestApplySortByPrice(t *testing.T) {
	low := Apply(testCatalog()[:2], models.FilterState{SortBy: models.SortByPriceLow})
	assert.Equal(t, []string{"1", "2"}, ids(low))

	high := Apply(testCatalog()[:2], models.FilterState{SortBy: models.SortByPriceHigh})
	assert.Equal(t, []string{"2", "1"}, ids(high))
}

func TestApplySortByRating(t *testing.T) {
	got := Apply(testCatalog(), models.FilterState{SortBy: models.SortByRating})
	assert.Equal(t, []string{"4", "2", "3", "1"}, ids(got))
}

func TestApplySortIsStable(t *testing.T) {
	same := []models.Product{
		{ID: "a", Name: "Same", Price: decimal.RequireFromString("10")},
		{ID: "b", Name: "Same", Price: decimal.RequireFromString("10")},
		{ID: "c", Name: "Same", Price: decimal.RequireFromString("10")},
	}
	for _, sortBy := range []string{models.SortByName, models.SortByPriceLow, models.SortByPriceHigh, models.SortByRating} {
		got := Apply(same, models.FilterState{SortBy: sortBy})
		assert.Equal(t, []string{"a", "b", "c"}, ids(got), "sort %q must keep catalog order on ties", sortBy)
	}
}

func TestApplySearchMatchesNameDescriptionCategory(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, []string{"2"}, ids(Apply(catalog, models.FilterState{Search: "ANN H"})))
	assert.Equal(t, []string{"3"}, ids(Apply(catalog, models.FilterState{Search: "waterproof"})))
	assert.Equal(t, []string{"4"}, ids(Apply(catalog, models.FilterState{Search: "accessor"})))
	assert.Empty(t, Apply(catalog, models.FilterState{Search: "no such product"}))
}

func TestApplyCategoryExactMatch(t *testing.T) {
	got := Apply(testCatalog(), models.FilterState{Category: "audio", SortBy: models.SortByName})
	assert.Equal(t, []string{"2", "1"}, ids(got))

	assert.Empty(t, Apply(testCatalog(), models.FilterState{Category: "aud"}))
}

func TestApplyPriceRangeInclusiveBounds(t *testing.T) {
	got := Apply(testCatalog(), models.FilterState{PriceRange: "5-9", SortBy: models.SortByPriceLow})
	assert.Equal(t, []string{"1", "2"}, ids(got))

	got = Apply(testCatalog(), models.FilterState{PriceRange: "6-9"})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestApplyPriceRangeOpenEnded(t *testing.T) {
	got := Apply(testCatalog(), models.FilterState{PriceRange: "1000+"})
	assert.Equal(t, []string{"4"}, ids(got))

	got = Apply(testCatalog(), models.FilterState{PriceRange: "9+", SortBy: models.SortByPriceLow})
	assert.Equal(t, []string{"2", "3", "4"}, ids(got))
}

func TestApplyUnparsableRangeIsInactive(t *testing.T) {
	got := Apply(testCatalog(), models.FilterState{PriceRange: "cheap", SortBy: models.SortByPriceLow})
	assert.Len(t, got, 4)
}

func TestApplyFiltersCombineWithAnd(t *testing.T) {
	got := Apply(testCatalog(), models.FilterState{Search: "a", Category: "audio", PriceRange: "6-10"})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestApplyIsIdempotentAndPure(t *testing.T) {
	catalog := testCatalog()
	state := models.FilterState{Category: "audio", SortBy: models.SortByPriceHigh}

	first := Apply(catalog, state)
	second := Apply(first, state)
	assert.Equal(t, ids(first), ids(second))

	// Source order untouched.
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(catalog))
}
