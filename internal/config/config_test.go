package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	// No config.yaml exists in the package directory; the storefront must
	// still come up on defaults.
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "TechStore", cfg.Store.Name)
	assert.Equal(t, "TS", cfg.Store.OrderPrefix)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "techstore_cart", cfg.Cart.Key)
	assert.Equal(t, "mock", cfg.EmailJS.Provider)
	assert.Equal(t, "https://wa.me", cfg.WhatsApp.BaseURL)
}
