package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Cart     CartConfig     `mapstructure:"cart"`
	EmailJS  EmailJSConfig  `mapstructure:"emailjs"`
	WhatsApp WhatsAppConfig `mapstructure:"whatsapp"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StoreConfig struct {
	Name        string `mapstructure:"name"`
	Tagline     string `mapstructure:"tagline"`
	OrderPrefix string `mapstructure:"order_prefix"`
	Currency    string `mapstructure:"currency"`
}

type CatalogConfig struct {
	Source string `mapstructure:"source"` // "file" or "http"
	Path   string `mapstructure:"path"`
	URL    string `mapstructure:"url"`
}

type CartConfig struct {
	Path string `mapstructure:"path"`
	Key  string `mapstructure:"key"`
}

type EmailJSConfig struct {
	Provider          string `mapstructure:"provider"` // "emailjs" or "mock"
	BaseURL           string `mapstructure:"base_url"`
	ServiceID         string `mapstructure:"service_id"`
	OrderTemplateID   string `mapstructure:"order_template_id"`
	ContactTemplateID string `mapstructure:"contact_template_id"`
	UserID            string `mapstructure:"user_id"`
}

type WhatsAppConfig struct {
	Number  string `mapstructure:"number"`
	BaseURL string `mapstructure:"base_url"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is not an error; the storefront runs on defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.storefront/")
	v.AddConfigPath("/etc/storefront/")

	setDefaults(v)

	// Enable environment variable override with STOREFRONT_ prefix
	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("store.name", "TechStore")
	v.SetDefault("store.tagline", "Premium Electronics & Gadgets")
	v.SetDefault("store.order_prefix", "TS")
	v.SetDefault("store.currency", "$")
	v.SetDefault("catalog.source", "file")
	v.SetDefault("catalog.path", "data/products.json")
	v.SetDefault("catalog.url", "")
	v.SetDefault("cart.path", "data/storefront.db.json")
	v.SetDefault("cart.key", "techstore_cart")
	v.SetDefault("emailjs.provider", "mock")
	v.SetDefault("emailjs.base_url", "https://api.emailjs.com")
	v.SetDefault("emailjs.service_id", "")
	v.SetDefault("emailjs.order_template_id", "")
	v.SetDefault("emailjs.contact_template_id", "")
	v.SetDefault("emailjs.user_id", "")
	v.SetDefault("whatsapp.number", "")
	v.SetDefault("whatsapp.base_url", "https://wa.me")
}
