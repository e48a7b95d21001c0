package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/cargoplus/collections_backend/internal/utils/cashcount"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Bill ledger collaborator
	BillingAPIURL     string
	BillingAPITimeout time.Duration

	// Optional guard-status cache; empty disables caching
	RedisURL string

	// Cash handling
	Denominations    domain.DenominationSet
	CurrencyExponent int32

	// Rate limiting, ulule/limiter format (e.g. "100-M")
	RateLimit string

	// Product analytics; empty disables tracking
	PosthogAPIKey   string
	PosthogEndpoint string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("BILLING_API_URL", "")
	viper.SetDefault("BILLING_API_TIMEOUT", "10s")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("DENOMINATIONS", "1000,500,200,100,50,20,10,5,2,1,0.50,0.20,0.10,0.05")
	viper.SetDefault("CURRENCY_EXPONENT", 2)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://app.posthog.com")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	cfg.BillingAPIURL = strings.TrimRight(viper.GetString("BILLING_API_URL"), "/")
	if cfg.BillingAPIURL == "" {
		log.Println("Warning: BILLING_API_URL environment variable not set.")
	}

	timeoutStr := viper.GetString("BILLING_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for BILLING_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.BillingAPITimeout = timeout

	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.CurrencyExponent = viper.GetInt32("CURRENCY_EXPONENT")
	if cfg.CurrencyExponent < 0 || cfg.CurrencyExponent > 4 {
		return nil, fmt.Errorf("CURRENCY_EXPONENT must be between 0 and 4, got %d", cfg.CurrencyExponent)
	}

	denomStr := viper.GetString("DENOMINATIONS")
	faceValues := splitAndTrim(denomStr)
	if len(faceValues) == 0 {
		return nil, fmt.Errorf("DENOMINATIONS must list at least one face value")
	}
	denoms, err := cashcount.ParseSet(faceValues, cfg.CurrencyExponent)
	if err != nil {
		return nil, fmt.Errorf("invalid DENOMINATIONS: %w", err)
	}
	cfg.Denominations = denoms

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	cfg.CORSAllowedOrigins = splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
