// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The loaded value is passed to constructors; nothing reads the environment after start-up.
*/
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// # Configuration Schema

// Config holds all runtime configuration for the Gumruk API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// LookupCacheTTL bounds how long cached lookup lists are served.
	LookupCacheTTL time.Duration `env:"LOOKUP_CACHE_TTL" envDefault:"10m"`

	// Cryptographic keys for access-token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Document and photo storage
	StorageDriver    string `env:"STORAGE_DRIVER"     envDefault:"local"`
	StorageLocalDir  string `env:"STORAGE_LOCAL_DIR"  envDefault:"./data/media"`
	StoragePublicURL string `env:"STORAGE_PUBLIC_URL" envDefault:"/media"`

	// Object Storage (S3-compatible, used when STORAGE_DRIVER=s3)
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"     envDefault:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3PathStyle bool   `env:"S3_PATH_STYLE" envDefault:"false"`

	// Static S3 credentials; when empty the default AWS credential chain is used
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`

	// ExportTimezone is used for the created/updated columns of spreadsheet exports.
	ExportTimezone string `env:"EXPORT_TIMEZONE" envDefault:"Asia/Ashgabat"`

	// Cross-Origin Resource Sharing, comma separated origins allowed in production
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDriverLocal:
	case StorageDriverS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if _, err := time.LoadLocation(c.ExportTimezone); err != nil {
		return fmt.Errorf("config: EXPORT_TIMEZONE: %w", err)
	}
	return nil
}

// ExportLocation returns the parsed EXPORT_TIMEZONE, falling back to UTC.
func (c *Config) ExportLocation() *time.Location {
	location, err := time.LoadLocation(c.ExportTimezone)
	if err != nil {
		return time.UTC
	}
	return location
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the parsed EXTRA_ORIGINS list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
