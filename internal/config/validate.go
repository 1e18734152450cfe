package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d,%d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	switch c.Analysis.Provider {
	case "static":
	case "claude":
		if c.Analysis.AnthropicAPIKey == "" {
			return fmt.Errorf("analysis.anthropic_api_key is required for the claude provider")
		}
	default:
		return fmt.Errorf("analysis.provider must be \"static\" or \"claude\" (got %q)", c.Analysis.Provider)
	}

	if c.Contracts.MaxContentBytes <= 0 {
		return fmt.Errorf("contracts.max_content_bytes must be positive (got %d)", c.Contracts.MaxContentBytes)
	}

	return nil
}
