package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
password = "secret"

[rules]
cache_ttl_seconds = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30*time.Second, cfg.Rules.CacheTTL())
	assert.False(t, cfg.Rules.FallbackOnEmpty)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=rental sslmode=disable", cfg.Database.DSN())
}

func TestLoad_DefaultCacheTTLIsZero(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Rules.CacheTTL())
}

func TestLoad_AdminKeyFromEnv(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "from-env")

	cfg, err := Load(writeConfig(t, "[admin]\napi_key = \"from-file\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Admin.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server\nhttp_port = 1"))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("negative ttl", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[rules]\ncache_ttl_seconds = -1\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("bad port", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server]\nhttp_port = 70000\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
