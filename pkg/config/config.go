package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL             string
	Port                    string
	IsProduction            bool
	RateLimit               string
	FinancialYearStartMonth int
	CORSAllowedOrigins      []string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("FINANCIAL_YEAR_START_MONTH", 1)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg := &Config{
		DatabaseURL:             v.GetString("PGSQL_URL"),
		Port:                    v.GetString("PORT"),
		IsProduction:            v.GetBool("IS_PRODUCTION"),
		RateLimit:               v.GetString("RATE_LIMIT"),
		FinancialYearStartMonth: v.GetInt("FINANCIAL_YEAR_START_MONTH"),
		CORSAllowedOrigins:      v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}
	if cfg.FinancialYearStartMonth < 1 || cfg.FinancialYearStartMonth > 12 {
		return nil, fmt.Errorf("FINANCIAL_YEAR_START_MONTH must be between 1 and 12, got %d", cfg.FinancialYearStartMonth)
	}

	return cfg, nil
}
