package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
storage_path: "storage/registrations.db"
http_server:
  address: "localhost:8082"
  read_timeout: 5s
auth:
  htpasswd_path: "users.htpasswd"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "storage/registrations.db", cfg.StoragePath)
	assert.Equal(t, "localhost:8082", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "users.htpasswd", cfg.HtpasswdPath)
	assert.Equal(t, "Registrations", cfg.Realm)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
storage_path: "a.db"
http_server:
  address: "localhost:8082"
auth:
  htpasswd_path: "users.htpasswd"
  realm: "from file"
`)
	t.Setenv("AUTH_REALM", "from env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.Realm)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("missing required field", func(t *testing.T) {
		path := writeConfig(t, `
env: "dev"
http_server:
  address: "localhost:8082"
auth:
  htpasswd_path: "users.htpasswd"
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "cannot read config")
	})
}
