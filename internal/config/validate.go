package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %v)", c.Auth.TokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.LoginRateLimit < 0 {
		return fmt.Errorf("auth.login_rate_limit must be >= 0 (got %d)", c.Auth.LoginRateLimit)
	}

	if err := c.Content.validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	return nil
}

func (c *ContentConfig) validate() error {
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", c.MaxPageSize)
	}
	sizes := map[string]int{
		"page_size":       c.PageSize,
		"admin_page_size": c.AdminPageSize,
		"topic_page_size": c.TopicPageSize,
	}
	for name, v := range sizes {
		if v <= 0 || v > c.MaxPageSize {
			return fmt.Errorf("%s must be in [1, %d] (got %d)", name, c.MaxPageSize, v)
		}
	}
	return nil
}
