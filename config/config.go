package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"stockfolio/auth"

	validation "github.com/go-ozzo/ozzo-validation"
)

// AppConfig is loaded once at process start and never mutated afterwards;
// concurrent reads need no synchronization.
type AppConfig struct {
	Address         string
	DSN             string
	SigningKey      string
	TokenExpiration int
	Issuer          string
	Audience        []string

	loadErr error
}

// Load reads configuration from the environment. Call Validate (or
// MustValidate) before using the result; a missing or short signing key is
// a fatal startup condition.
func Load() *AppConfig {
	cfg := &AppConfig{
		Address:    envOr("STOCKFOLIO_ADDR", ":3000"),
		DSN:        envOr("STOCKFOLIO_DSN", "file:stockfolio.db?cache=shared"),
		SigningKey: os.Getenv("JWT_SIGNING_KEY"),
		Issuer:     envOr("JWT_ISSUER", "stockfolio"),
		Audience:   splitList(envOr("JWT_AUDIENCE", "stockfolio")),
	}

	cfg.TokenExpiration, cfg.loadErr = envInt("JWT_TOKEN_EXPIRATION_HOURS", auth.DefaultTokenExpiration)

	return cfg
}

// Validate will run validation rules. A value that failed to parse during
// Load fails here rather than silently falling back to a default.
func (c *AppConfig) Validate() error {
	if c.loadErr != nil {
		return c.loadErr
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.Address, validation.Required),
		validation.Field(&c.DSN, validation.Required),
		validation.Field(&c.SigningKey, validation.Required, validation.By(auth.ValidateSigningKey)),
		validation.Field(&c.Issuer, validation.Required),
		validation.Field(&c.TokenExpiration, validation.Min(1)),
	)
}

func (c *AppConfig) MustValidate() {
	if err := c.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
}

// GetSigningKey implements auth.Config
func (c *AppConfig) GetSigningKey() string {
	return c.SigningKey
}

// GetTokenExpiration implements auth.Config
func (c *AppConfig) GetTokenExpiration() int {
	return c.TokenExpiration
}

// GetIssuer implements auth.Config
func (c *AppConfig) GetIssuer() string {
	return c.Issuer
}

// GetAudience implements auth.Config
func (c *AppConfig) GetAudience() []string {
	return c.Audience
}

var _ auth.Config = (*AppConfig)(nil)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
