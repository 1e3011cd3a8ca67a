package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage_EmbeddedCatalogue(t *testing.T) {
	assert.Equal(t, "Location not found", GetMessage("location.error.not-found"))
	assert.Equal(t, "Supported formats: json, csv, md", GetMessage("export.error.format"))
}

func TestGetMessage_ReplacesPlaceholders(t *testing.T) {
	assert.Equal(t, "location must be at least 2 characters", GetMessage("validation.min", "location", 2))
	assert.Equal(t, "Weather query 7 saved for 'Paris'", GetMessage("query.created", int64(7), "Paris"))
}

func TestGetMessage_SerializesStructArguments(t *testing.T) {
	arg := struct {
		Name string `json:"name"`
	}{Name: "Paris"}

	assert.Equal(t, `{"name":"Paris"} is required`, GetMessage("validation.required", arg))
}

func TestGetMessage_UnknownKey(t *testing.T) {
	assert.Equal(t, "Message not found: does.not.exist", GetMessage("does.not.exist"))
}

func TestInit_MergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("custom:\n  hello: \"Hello {0}\"\n"), 0o600))

	require.NoError(t, Init(path))

	assert.Equal(t, "Hello world", GetMessage("custom.hello", "world"))
	assert.Equal(t, "Location not found", GetMessage("location.error.not-found"))
}

func TestInit_MissingFile(t *testing.T) {
	require.Error(t, Init(filepath.Join(t.TempDir(), "missing.yml")))
}
