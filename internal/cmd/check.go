package cmd

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/techstore/storefront/internal/catalog"
	"github.com/techstore/storefront/internal/config"
	"github.com/techstore/storefront/internal/dispatch"
	"github.com/techstore/storefront/internal/models"
)

var testEmail bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the storefront configuration and catalog source",
	Long: `Check that the configuration loads, the catalog source is reachable
and parses, and optionally that the EmailJS channel accepts a test
message. Run this after 'storefront setup' or after editing config.yaml.`,
	RunE: checkStorefront,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&testEmail, "test-email", false, "Send a test message through the email channel")
}

func checkStorefront(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Checking storefront configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fmt.Printf("   🏪 Store: %s (%s)\n", cfg.Store.Name, cfg.Store.Tagline)
	fmt.Printf("   🌐 Server: %s\n", cfg.Server.Addr)
	fmt.Printf("   📮 Email provider: %s\n", cfg.EmailJS.Provider)
	fmt.Printf("   📱 WhatsApp number: %s\n", orUnset(cfg.WhatsApp.Number))

	fmt.Printf("\n📦 Fetching catalog from %s source...\n", cfg.Catalog.Source)
	source, err := catalog.NewSource(&cfg.Catalog, afero.NewOsFs())
	if err != nil {
		return fmt.Errorf("failed to create catalog source: %w", err)
	}

	products, err := source.Fetch(cmd.Context())
	if err != nil {
		fmt.Println("⚠️  Catalog fetch failed - the storefront would serve an empty grid")
		fmt.Printf("   %v\n", err)
		return nil
	}

	fmt.Printf("✅ Catalog loaded: %d products\n", len(products))
	printCatalogSummary(products)

	if testEmail {
		fmt.Println("\n📨 Sending test message through email channel...")
		sender, err := dispatch.NewSender(&cfg.EmailJS, &cfg.Store)
		if err != nil {
			return fmt.Errorf("failed to create email sender: %w", err)
		}
		msg := models.ContactMessage{
			Name:    "Storefront Check",
			Email:   "check@localhost",
			Subject: "Connection test",
			Message: "Test message from 'storefront check --test-email'.",
		}
		if err := sender.SendContact(cmd.Context(), msg); err != nil {
			return fmt.Errorf("email channel test failed: %w", err)
		}
		fmt.Println("✅ Email channel accepted the test message")
	}

	return nil
}

func printCatalogSummary(products []models.Product) {
	byCategory := map[string]int{}
	featured := 0
	total := decimal.Zero
	for _, p := range products {
		byCategory[p.Category]++
		if p.Featured {
			featured++
		}
		total = total.Add(p.Price)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Printf("   🏷️  %s: %d\n", category, byCategory[category])
	}
	fmt.Printf("   ⭐ Featured: %d\n", featured)
	if len(products) > 0 {
		avg := total.Div(decimal.NewFromInt(int64(len(products))))
		fmt.Printf("   💰 Average price: %s\n", avg.StringFixed(2))
	}
}

func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}
