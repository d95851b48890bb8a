package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "patientor", cfg.AppName)
	assert.True(t, cfg.SeedFixtures)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsDev())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SEED_FIXTURES", "false")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://patientor.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.SeedFixtures)
	assert.Equal(t, []string{"http://localhost:3000", "https://patientor.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_RejectsUnknownLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "", LogFormat: "text", ShutdownTimeout: time.Second}
	assert.Error(t, cfg.Validate())

	cfg.Port = "3001"
	assert.NoError(t, cfg.Validate())

	cfg.ShutdownTimeout = 0
	assert.Error(t, cfg.Validate())
}
