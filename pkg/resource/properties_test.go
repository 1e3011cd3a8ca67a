package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit_ResolvesEnvironmentPlaceholders(t *testing.T) {
	t.Setenv("TEST_DB_DRIVER", "sqlite")

	path := writeProperties(t, `
app:
  name: weather
  db:
    driver: ${TEST_DB_DRIVER:postgres}
    host: ${TEST_DB_HOST_UNSET:localhost}
    dsn: ${TEST_DB_DSN_UNSET}
    url: postgres://${TEST_DB_DRIVER:x}@host
  provider:
    timeout: 15s
  server:
    port: 8080
    origins:
      - "*"
`)

	require.NoError(t, Init(path))

	assert.Equal(t, "weather", GetString("app.name"))
	assert.Equal(t, "sqlite", GetString("app.db.driver"))
	assert.Equal(t, "localhost", GetString("app.db.host"))
	assert.Empty(t, GetString("app.db.dsn"))
	assert.Equal(t, "postgres://sqlite@host", GetString("app.db.url"))
	assert.Equal(t, 15*time.Second, GetDuration("app.provider.timeout"))
	assert.Equal(t, 8080, GetInt("app.server.port"))
	assert.Equal(t, []string{"*"}, GetStringSlice("app.server.origins"))
}

func TestInit_MissingFile(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing.yml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail to read properties")
}

func TestPath_HonoursEnvironment(t *testing.T) {
	t.Setenv("PROPERTIES_FILE_PATH", "/etc/weather/application.yml")
	assert.Equal(t, "/etc/weather/application.yml", Path())

	t.Setenv("PROPERTIES_FILE_PATH", "")
	assert.Equal(t, defaultPropertiesPath, Path())
}

func TestSetDefault_UsedWhenKeyMissing(t *testing.T) {
	path := writeProperties(t, "app:\n  name: weather\n")
	require.NoError(t, Init(path))

	SetDefault("app.frontend.path", "frontend")

	assert.Equal(t, "frontend", GetString("app.frontend.path"))
}
