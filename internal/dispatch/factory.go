package dispatch

import (
	"fmt"

	"github.com/techstore/storefront/internal/config"
)

// NewSender creates a structured-send sink based on configuration.
func NewSender(cfg *config.EmailJSConfig, store *config.StoreConfig) (Sender, error) {
	switch cfg.Provider {
	case "emailjs":
		return NewEmailJSSender(cfg, store), nil
	case "mock":
		return NewMockSender(), nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", cfg.Provider)
	}
}
