package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// DefaultDisplayCurrency is used when a request does not name one.
	DefaultDisplayCurrency string `mapstructure:"DEFAULT_DISPLAY_CURRENCY"`

	// Rate limiting, e.g. "100-M" for 100 requests per minute.
	RateLimit string `mapstructure:"RATE_LIMIT"`

	// Analytics
	PostHogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
	PostHogHost   string `mapstructure:"POSTHOG_HOST"`

	// ShareLinkTTL bounds how long a booking share token stays valid.
	ShareLinkTTL time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DEFAULT_DISPLAY_CURRENCY", "USD")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_HOST", "https://us.i.posthog.com")
	viper.SetDefault("SHARE_LINK_TTL", "720h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	shareTTLStr := viper.GetString("SHARE_LINK_TTL")
	shareTTL, err := time.ParseDuration(shareTTLStr)
	if err != nil {
		shareTTL = time.Hour * 24 * 30
		if shareTTLStr != "" {
			log.Printf("Warning: Invalid value for SHARE_LINK_TTL ('%s'). Defaulting to %s.\n", shareTTLStr, shareTTL.String())
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.DefaultDisplayCurrency = viper.GetString("DEFAULT_DISPLAY_CURRENCY")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PostHogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PostHogHost = viper.GetString("POSTHOG_HOST")
	cfg.ShareLinkTTL = shareTTL

	return cfg, nil
}
