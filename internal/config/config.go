package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Business settings (store name, tax rate, currency symbol, low-stock
// threshold) are NOT here — they live in the settings table and are managed
// through the settings service.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Store
	DBPath     string `mapstructure:"DB_PATH"`
	ReceiptDir string `mapstructure:"RECEIPT_DIR"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// First-run bootstrap. A fixed default credential is created when the
	// users table is empty — a documented weakness of the system, kept
	// overridable here so deployments can at least change it at install time.
	BootstrapAdminUser     string `mapstructure:"BOOTSTRAP_ADMIN_USER"`
	BootstrapAdminPassword string `mapstructure:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for a single-terminal install
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_PATH", "data/store.db")
	viper.SetDefault("RECEIPT_DIR", "receipts")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("BOOTSTRAP_ADMIN_USER", "admin")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "admin123")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
