package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var force bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a starter config.yaml and sample product catalog",
	Long: `Creates a starter config.yaml and a sample data/products.json so the
storefront runs out of the box. Edit the EmailJS and WhatsApp sections
of config.yaml to connect the real order channels.`,
	RunE: setupStorefront,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
}

const starterConfig = `server:
  addr: ":8080"

store:
  name: "TechStore"
  tagline: "Premium Electronics & Gadgets"
  order_prefix: "TS"
  currency: "$"

catalog:
  source: "file"
  path: "data/products.json"

cart:
  path: "data/storefront.db.json"
  key: "techstore_cart"

emailjs:
  provider: "mock"
  base_url: "https://api.emailjs.com"
  service_id: ""
  order_template_id: ""
  contact_template_id: ""
  user_id: ""

whatsapp:
  number: "15551234567"
  base_url: "https://wa.me"
`

const sampleCatalog = `{
  "products": [
    {
      "id": "1",
      "name": "Wireless Bluetooth Headphones",
      "description": "Premium noise-cancelling headphones with 30-hour battery life",
      "category": "audio",
      "price": 199.99,
      "originalPrice": 249.99,
      "rating": 4.5,
      "reviews": 128,
      "image": "images/products/headphones.jpg",
      "features": ["Active noise cancellation", "30-hour battery", "Quick charge"],
      "featured": true
    },
    {
      "id": "2",
      "name": "Smart Fitness Watch",
      "description": "Track workouts, heart rate and sleep with a bright AMOLED display",
      "category": "wearables",
      "price": 149.99,
      "originalPrice": 149.99,
      "rating": 4.2,
      "reviews": 86,
      "image": "images/products/watch.jpg",
      "features": ["Heart rate monitor", "GPS tracking", "5 ATM water resistance"],
      "featured": true
    },
    {
      "id": "3",
      "name": "Portable Power Bank 20000mAh",
      "description": "Fast-charging power bank with dual USB-C ports",
      "category": "accessories",
      "price": 49.99,
      "originalPrice": 59.99,
      "rating": 4.7,
      "reviews": 342,
      "image": "images/products/powerbank.jpg",
      "features": ["20000mAh capacity", "65W fast charge", "Dual USB-C"],
      "featured": false
    },
    {
      "id": "4",
      "name": "4K Action Camera",
      "description": "Waterproof action camera with image stabilization",
      "category": "cameras",
      "price": 299.99,
      "originalPrice": 349.99,
      "rating": 4.4,
      "reviews": 57,
      "image": "images/products/camera.jpg",
      "features": ["4K 60fps video", "Waterproof to 10m", "Image stabilization"],
      "featured": true
    },
    {
      "id": "5",
      "name": "Mechanical Gaming Keyboard",
      "description": "RGB backlit keyboard with hot-swappable switches",
      "category": "accessories",
      "price": 89.99,
      "originalPrice": 89.99,
      "rating": 4.6,
      "reviews": 211,
      "image": "images/products/keyboard.jpg",
      "features": ["Hot-swappable switches", "RGB backlight", "Detachable cable"],
      "featured": false
    },
    {
      "id": "6",
      "name": "Smart Home Speaker",
      "description": "Voice-controlled speaker with room-filling sound",
      "category": "audio",
      "price": 79.99,
      "originalPrice": 99.99,
      "rating": 4.1,
      "reviews": 164,
      "image": "images/products/speaker.jpg",
      "features": ["Voice assistant", "Multi-room audio", "Wi-Fi and Bluetooth"],
      "featured": true
    }
  ]
}
`

func setupStorefront(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up storefront...")

	fs := afero.NewOsFs()

	fmt.Println("   📝 Writing config.yaml...")
	if err := writeFile(fs, "config.yaml", starterConfig); err != nil {
		return err
	}

	fmt.Println("   📦 Writing data/products.json...")
	if err := fs.MkdirAll("data", 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := writeFile(fs, "data/products.json", sampleCatalog); err != nil {
		return err
	}

	fmt.Println("✅ Storefront setup complete!")
	fmt.Println("💡 Run 'storefront check' to verify, then 'storefront run' to start")
	return nil
}

func writeFile(fs afero.Fs, path, content string) error {
	if !force {
		if exists, _ := afero.Exists(fs, path); exists {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
