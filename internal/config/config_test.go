package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "u",
		Password: "p",
		DBName:   "locks",
		SSLMode:  "require",
	}
	assert.Equal(t, "postgres://u:p@db:5433/locks?sslmode=require", d.DSN())
}

func TestLoadStore_Missing(t *testing.T) {
	cfg, err := LoadStore(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultStore(), cfg)
}

func TestLoadStore_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
style: chat
materials: config/materials.yaml
database:
  host: pg.internal
  dbname: lwc
`), 0o644))

	cfg, err := LoadStore(path)
	require.NoError(t, err)

	assert.Equal(t, "chat", cfg.Style)
	assert.Equal(t, "config/materials.yaml", cfg.Materials)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, "lwc", cfg.Database.DBName)
	// untouched keys keep their defaults
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 4, cfg.ListConcurrency)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestDefaultStore_Valid(t *testing.T) {
	require.NoError(t, DefaultStore().Validate())
}

func TestLoadStore_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "database: [\n"},
		{"bad port", "database:\n  port: 70000\n"},
		{"bad concurrency", "list_concurrency: 0\n"},
		{"bcrypt cost too low", "bcrypt_cost: 3\n"},
		{"bcrypt cost too high", "bcrypt_cost: 32\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "blocklock.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadStore(path)
			assert.Error(t, err)
		})
	}
}
