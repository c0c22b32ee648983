package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
env:
  serviceName: acai
http:
  port: 9090
secretKey:
  access: secret
marketplace:
  seedDemoData: false
  defaultSort: proximity
`

func TestLoadWithEnv_OverridesYAMLWithEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(minimalYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("MARKETPLACE_DEFAULTSORT", "price")
	t.Setenv("MARKETPLACE_SEEDDEMODATA", "true")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Marketplace)
	assert.Equal(t, "price", cfg.Marketplace.DefaultSort)
	assert.True(t, cfg.Marketplace.SeedDemoData)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "client", cfg.Geolocation.Provider)
	assert.NotNil(t, cfg.Marketplace)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.PubSub)
}
