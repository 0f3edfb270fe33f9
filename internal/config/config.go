package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

var knownWeakSecrets = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password",
}

type Config struct {
	Port        int    `env:"PORT" envDefault:"4000"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL"`
	CORSOrigin  string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`

	AdminUser         string `env:"ADMIN_USER"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	AdminTokenSecret  string `env:"ADMIN_TOKEN_SECRET"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AdminConfigured reports whether every value the login flow depends on
// is present. When it is false every login attempt fails closed.
func (c *Config) AdminConfigured() bool {
	if c.AdminUser == "" || c.AdminTokenSecret == "" {
		return false
	}
	return c.AdminPassword != "" || c.AdminPasswordHash != ""
}

func (c *Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func (c *Config) Validate(isProduction bool) error {
	if c.AdminPasswordHash != "" {
		if !isBcryptHash(c.AdminPasswordHash) {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be a bcrypt hash (generate with: go run scripts/hash-password.go <password>)")
		}
	}

	if isProduction {
		if err := validateSecret("ADMIN_TOKEN_SECRET", c.AdminTokenSecret); err != nil {
			return err
		}
		if c.AdminPasswordHash == "" && c.AdminPassword != "" {
			log.Warn().Msg("ADMIN_PASSWORD is set in plaintext in production: prefer ADMIN_PASSWORD_HASH")
		}
		if !c.CloudinaryConfigured() {
			log.Warn().Msg("Cloudinary credentials are incomplete: remote image cleanup disabled")
		}
	}

	return nil
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func validateSecret(name, value string) error {
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: openssl rand -base64 32)", name)
	}
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
