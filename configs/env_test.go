package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-query-api/pkg/resource"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ReadsApplicationProperties(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	require.NoError(t, resource.Init("application.yml"))

	config := Load()

	assert.Equal(t, 8000, config.Port)
	assert.Equal(t, "/api", config.ContextPath)
	assert.Equal(t, "sqlite", config.DB.Driver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.AllowedOrigins)
	assert.Equal(t, "https://geocoding-api.open-meteo.com", config.Geocoding.BaseURL)
	assert.Equal(t, 15*time.Second, config.Geocoding.Timeout)
	assert.Equal(t, "https://api.open-meteo.com", config.Forecast.BaseURL)
	assert.Equal(t, 20*time.Second, config.Forecast.Timeout)
	assert.Equal(t, "frontend", config.FrontendPath)
}

func TestLoad_DefaultsForAbsentKeys(t *testing.T) {
	require.NoError(t, resource.Init(writeProperties(t, "app:\n  name: minimal\n")))

	config := Load()

	assert.Equal(t, "minimal", config.ApplicationName)
	assert.Equal(t, 8000, config.Port)
	assert.Equal(t, "/api", config.ContextPath)
	assert.Equal(t, []string{"*"}, config.AllowedOrigins)
	assert.Equal(t, "postgres", config.DB.Driver)
	assert.Equal(t, 15*time.Second, config.Geocoding.Timeout)
	assert.Equal(t, 20*time.Second, config.Forecast.Timeout)
}

func TestNormalizeContextPath(t *testing.T) {
	assert.Equal(t, "/api", normalizeContextPath("api/"))
	assert.Equal(t, "/v1/api", normalizeContextPath(" /v1/api "))
	assert.Equal(t, "", normalizeContextPath("/"))
}
