package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Store holds the configuration shared by blocklock tools.
type Store struct {
	// Database
	Database DatabaseConfig `yaml:"database"`

	// Display
	Style     string `yaml:"style"`     // plain | chat | terminal
	Materials string `yaml:"materials"` // optional YAML overlay for block names

	// Secrets
	BcryptCost int `yaml:"bcrypt_cost"` // cost of new protection passwords (4-31)

	// Listing
	ListConcurrency int `yaml:"list_concurrency"` // worlds loaded in parallel
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultStore returns Store config with sensible defaults.
func DefaultStore() Store {
	return Store{
		Style:           "terminal",
		BcryptCost:      10,
		ListConcurrency: 4,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "blocklock",
			Password: "blocklock",
			DBName:   "blocklock",
			SSLMode:  "disable",
		},
	}
}

// Validate rejects values the tools cannot work with.
func (s Store) Validate() error {
	if s.Database.Port <= 0 || s.Database.Port > 65535 {
		return fmt.Errorf("database port out of range: %d", s.Database.Port)
	}
	if s.BcryptCost < bcrypt.MinCost || s.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, s.BcryptCost)
	}
	if s.ListConcurrency <= 0 {
		return fmt.Errorf("list_concurrency must be positive, got %d", s.ListConcurrency)
	}
	return nil
}

// LoadStore loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadStore(path string) (Store, error) {
	cfg := DefaultStore()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
