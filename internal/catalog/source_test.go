package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstore/storefront/internal/config"
)

const catalogJSON = `{
	"products": [
		{
			"id": "1",
			"name": "Wireless Headphones",
			"description": "Noise cancelling",
			"category": "audio",
			"price": 199.99,
			"originalPrice": 249.99,
			"rating": 4.5,
			"reviews": 128,
			"image": "headphones.jpg",
			"features": ["ANC", "30-hour battery"],
			"featured": true
		}
	]
}`

func TestFileSourceFetch(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/products.json", []byte(catalogJSON), 0o644))

	products, err := NewFileSource(fs, "data/products.json").Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Wireless Headphones", p.Name)
	assert.Equal(t, "199.99", p.Price.String())
	assert.Equal(t, "249.99", p.OriginalPrice.String())
	assert.True(t, p.Discounted())
	assert.Equal(t, []string{"ANC", "30-hour battery"}, p.Features)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(afero.NewMemMapFs(), "data/products.json").Fetch(context.Background())
	assert.Error(t, err)
}

func TestFileSourceMalformedDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "products.json", []byte("{oops"), 0o644))

	_, err := NewFileSource(fs, "products.json").Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPSourceFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogJSON))
	}))
	defer ts.Close()

	products, err := NewHTTPSource(ts.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
}

func TestHTTPSourceNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := NewHTTPSource(ts.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestNewSourceFactory(t *testing.T) {
	fs := afero.NewMemMapFs()

	source, err := NewSource(&config.CatalogConfig{Source: "file", Path: "p.json"}, fs)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, source)

	source, err = NewSource(&config.CatalogConfig{Source: "http", URL: "http://example.com/p.json"}, fs)
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, source)

	_, err = NewSource(&config.CatalogConfig{Source: "ftp"}, fs)
	assert.Error(t, err)
}
