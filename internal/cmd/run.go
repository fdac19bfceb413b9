package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/techstore/storefront/internal/cart"
	"github.com/techstore/storefront/internal/catalog"
	"github.com/techstore/storefront/internal/config"
	"github.com/techstore/storefront/internal/dispatch"
	"github.com/techstore/storefront/internal/notify"
	"github.com/techstore/storefront/internal/order"
	"github.com/techstore/storefront/internal/server"
	"github.com/techstore/storefront/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront API server",
	Long: `Start the storefront API server which provides:
- Product catalog with search, filtering and sorting
- Locally persisted shopping cart
- Checkout via WhatsApp deep link or templated email send`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🛒 TechStore Storefront Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logrus.New()
	fs := afero.NewOsFs()

	fmt.Println("📦 Preparing catalog source...")
	source, err := catalog.NewSource(&cfg.Catalog, fs)
	if err != nil {
		return fmt.Errorf("failed to create catalog source: %w", err)
	}
	accessor := catalog.NewAccessor(source, log)

	fmt.Println("🧺 Loading cart snapshot...")
	notifier := notify.NewLogNotifier(log)
	cartStore := cart.NewStore(
		storage.NewFileStore(fs, cfg.Cart.Path),
		cfg.Cart.Key,
		accessor,
		notifier,
		log,
	)

	fmt.Println("📮 Preparing order channels...")
	sender, err := dispatch.NewSender(&cfg.EmailJS, &cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to create email sender: %w", err)
	}
	assembler := order.NewAssembler(accessor, cfg.Store.OrderPrefix)
	dispatcher := dispatch.NewDispatcher(cfg, sender, dispatch.NewLogOpener(log), cartStore, log)

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(cfg, accessor, cartStore, assembler, dispatcher, sender)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
