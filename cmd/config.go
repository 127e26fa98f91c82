package cmd

import (
	"fmt"
)

// Storage driver names accepted by the STORAGE_DRIVER setting.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string
	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
}

// Validate checks the configuration for a usable combination of settings.
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}

	switch c.StorageDriver {
	case StorageMemory:
		return nil
	case StoragePostgres:
		if c.DBHost == "" || c.DBPort == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("postgres storage requires DB_HOST, DB_PORT, DB_USER and DB_NAME")
		}
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}
