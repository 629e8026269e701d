package bootstrap

import (
	"errors"
	"fmt"

	"github.com/mozilla/zamboni-sub003/internal/config"
)

// validateConfiguration validates all configuration settings
func validateConfiguration(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateGatewayConfig(cfg); err != nil {
		return fmt.Errorf("invalid payment gateway configuration: %w", err)
	}
	return nil
}

// validateGatewayConfig checks the SOLITUDE_* settings the retry client needs
func validateGatewayConfig(cfg *config.Config) error {
	switch cfg.SolitudeAuthMode {
	case "none":
	case "simple", "hmac":
		if cfg.SolitudeAuthSecret == "" {
			return fmt.Errorf("SOLITUDE_AUTH_SECRET is required when SOLITUDE_AUTH_MODE=%s", cfg.SolitudeAuthMode)
		}
	default:
		return fmt.Errorf("invalid SOLITUDE_AUTH_MODE: %s (must be: none, simple, hmac)", cfg.SolitudeAuthMode)
	}
	if cfg.IsProduction && cfg.SolitudeURL == "" {
		return errors.New("SOLITUDE_URL is required in production")
	}
	return nil
}
