package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "server:\n  port: 9001\ndatabase:\n  driver: mysql\n  dsn: user:pass@tcp(db)/bistro\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver, "env wins over file")
	assert.Equal(t, "user:pass@tcp(db)/bistro", cfg.Database.DSN)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}
