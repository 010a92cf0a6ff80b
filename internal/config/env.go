package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read by the CLI.
const (
	EnvOpenAIKey        = "OPENAI_API_KEY"
	EnvConfigPath       = "TRANSCRIBE_CONFIG"
	EnvEngine           = "TRANSCRIBE_ENGINE"
	EnvYtDlpBinary      = "YTDLP_BINARY"
	EnvParakeetBinary   = "PARAKEET_BINARY"
	EnvWhisperCppBinary = "WHISPER_CPP_BINARY"
	EnvWhisperCppModel  = "WHISPER_CPP_MODEL"
	EnvHistoryDB        = "TRANSCRIBE_HISTORY_DB"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
}

// LoadEnv loads the first .env file found in the working directory and
// returns its path. A missing file is not an error; variables may be set
// system-wide.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// GetAPIKeys retrieves API keys from environment variables. Their format is
// checked by Settings.Validate once the engine is known.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv(EnvOpenAIKey)),
	}
	return apiKeys, nil
}

// InitializeConfig loads .env, then the settings file named by path (or the
// default location), then environment overrides.
func InitializeConfig(path string) (*Settings, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		return nil, err
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}
	settings.OpenAIAPIKey = apiKeys.OpenAI

	settings.ApplyEnv()
	return settings, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
