package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("APP_NAME", "skill-swap")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("AUTH_TOKEN_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "memory")
}

func TestLoad_MemoryDriver(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTH_BOOTSTRAP_ADMINS", "alice, bob")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "skill-swap", cfg.App.AppName)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, []string{"alice", "bob"}, cfg.Auth.BootstrapAdmins)
	assert.Equal(t, 10*time.Second, cfg.Messaging.PollInterval)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoad_MissingRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_NAME", "")
	t.Setenv("AUTH_TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "AUTH_TOKEN_SECRET")
}

func TestLoad_PostgresRequiresDatabase(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestLoad_UnknownDriver(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	setBaseEnv(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
app:
  name: from-file
  log_level: debug
messaging:
  poll_interval: 30s
`), 0o600))
	t.Setenv("CONFIG_FILE", file)
	t.Setenv("APP_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.AppName)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Messaging.PollInterval)

	t.Setenv("APP_NAME", "from-env")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.AppName)
}
