package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "TechStore Storefront - catalog, cart and checkout service",
	Long: `TechStore Storefront serves the product catalog, maintains a locally
persisted shopping cart, and submits orders through WhatsApp deep links
or templated EmailJS sends.

Run the API server with 'storefront run', or use 'storefront setup' to
write a starter configuration and sample catalog.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
