package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "yt-transcribe/internal/app/errors"
)

func TestGetAPIKeys(t *testing.T) {
	testCases := []struct {
		name      string
		openaiKey string
		want      string
	}{
		{name: "OpenAI key", openaiKey: "sk-1234567890abcdef1234567890abcdef", want: "sk-1234567890abcdef1234567890abcdef"},
		{name: "other key formats are passed through", openaiKey: "proj-abc", want: "proj-abc"},
		{name: "surrounding space is trimmed", openaiKey: "  sk-1234567890abcdef1234  ", want: "sk-1234567890abcdef1234"},
		{name: "empty key is allowed", openaiKey: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvOpenAIKey, tc.openaiKey)

			apiKeys, err := GetAPIKeys()
			require.NoError(t, err)
			assert.Equal(t, tc.want, apiKeys.OpenAI)
		})
	}
}

func TestValidateAPIKey(t *testing.T) {
	assert.NoError(t, ValidateAPIKey("sk-1234567890abcdef1234567890abcdef"))
	assert.ErrorContains(t, ValidateAPIKey("invalid-key"), "invalid OPENAI_API_KEY format")
	assert.ErrorContains(t, ValidateAPIKey("sk-short"), "too short")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	t.Setenv(EnvEngine, "")
	os.Unsetenv(EnvEngine)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TRANSCRIBE_ENGINE=openai\n"), 0o644))

	loaded, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "openai", os.Getenv(EnvEngine))
}

func TestInitializeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: whisper_cpp\nwhisper_cpp_model: /models/a.bin\n"), 0o644))

	t.Setenv(EnvOpenAIKey, "sk-1234567890abcdef1234567890abcdef")
	t.Setenv(EnvEngine, "openai")

	settings, err := InitializeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, EngineOpenAI, settings.Engine)
	assert.Equal(t, "/models/a.bin", settings.WhisperCppModel)
	assert.Equal(t, "sk-1234567890abcdef1234567890abcdef", settings.OpenAIAPIKey)
	assert.NoError(t, settings.Validate())
}

func TestInitializeConfig_UnrelatedKeyWithLocalEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: parakeet\n"), 0o644))

	t.Setenv(EnvOpenAIKey, "proj-abc")
	t.Setenv(EnvEngine, "")

	settings, err := InitializeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, EngineParakeet, settings.Engine)
	assert.NoError(t, settings.Validate())

	settings.Engine = EngineOpenAI
	err = settings.Validate()
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
	assert.ErrorContains(t, err, "must start with 'sk-'")
}
