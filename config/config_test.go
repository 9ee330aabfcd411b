package config_test

import (
	"testing"

	"github.com/estateline/estateline-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/estateline")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)
	assert.Equal(t, 600, cfg.Cache.PropertyTTLSeconds)
	assert.False(t, cfg.Cache.DisablePropertiesCache)
	assert.Equal(t, "estateline-api", cfg.AdminSession.JWTIssuer)
	assert.Equal(t, 24, cfg.AdminSession.SessionTTLHours)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_ParsesCORSOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/estateline")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoad_ProfilingRequiresEndpoint(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/estateline")
	t.Setenv("O11Y_PROFILING_ENABLED", "true")
	t.Setenv("O11Y_PROFILING_ENDPOINT", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "O11Y_PROFILING_ENDPOINT")
}

func TestIsDevelopment(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{AppEnv: "development"}}
	assert.True(t, cfg.IsDevelopment())

	cfg = &config.Config{Server: config.ServerConfig{AppEnv: "production", GinMode: "release"}}
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
