package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Chdir(dir)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, StrategyReload, cfg.RefreshStrategy)
	assert.Equal(t, filepath.Join(dir, "session.json"), cfg.SessionPath)
	assert.Equal(t, filepath.Join(dir, "cache.db"), cfg.CachePath)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
}

func TestLoad_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("SERVER_ADDRESS", "items.example.com")
	t.Setenv("ENABLE_TLS", "true")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("REFRESH_STRATEGY", "PATCH")
	t.Chdir(dir)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "https://items.example.com", cfg.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, StrategyPatch, cfg.RefreshStrategy)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Chdir(dir)

	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server_address: http://10.0.0.5:9000\nrefresh_strategy: patch\n"), 0o600))

	cfg, err := Load(file)

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000", cfg.BaseURL())
	assert.Equal(t, StrategyPatch, cfg.RefreshStrategy)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown strategy", map[string]string{"REFRESH_STRATEGY": "sometimes"}},
		{"zero timeout", map[string]string{"REQUEST_TIMEOUT_SECONDS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("CONFIG_DIR", dir)
			t.Chdir(dir)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
