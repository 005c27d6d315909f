package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	// Run from an empty directory so a developer's local gostratus.yaml
	// cannot leak into the test.
	chdir(t, t.TempDir())

	t.Run("LoadDefaults", func(t *testing.T) {
		cfg, err := Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "s3", cfg.Translate.Dialect)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv("GOSTRATUS_SERVER_PORT", "9090")
		t.Setenv("GOSTRATUS_TRANSLATE_DIALECT", "azure")
		t.Setenv("GOSTRATUS_SERVER_READ_TIMEOUT", "5s")

		cfg, err := Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "azure", cfg.Translate.Dialect)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	})

	t.Run("InvalidDialect", func(t *testing.T) {
		t.Setenv("GOSTRATUS_TRANSLATE_DIALECT", "gcs")

		_, err := Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "translate.dialect")
	})

	t.Run("InvalidPort", func(t *testing.T) {
		t.Setenv("GOSTRATUS_SERVER_PORT", "70000")

		_, err := Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
	})
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: 9999\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gostratus.yaml"), content, 0o644))

	chdir(t, dir)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "server.port", Message: "invalid port 70000"}
	assert.Equal(t, "config: server.port: invalid port 70000", err.Error())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
