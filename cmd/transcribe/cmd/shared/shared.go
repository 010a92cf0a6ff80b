// Package shared holds the persistent flags and setup used by every subcommand.
package shared

import (
	"go.uber.org/zap"

	"yt-transcribe/internal/app/common"
	"yt-transcribe/internal/config"
)

var (
	ConfigPath string
	Verbose    bool
)

// LoadSettings reads .env, the settings file and the environment.
// Callers apply their own flag overrides and then call Validate.
func LoadSettings() (*config.Settings, error) {
	return config.InitializeConfig(ConfigPath)
}

// NewLogger returns the development logger with --verbose and the quiet one otherwise.
func NewLogger() *zap.Logger {
	return common.MustNewLogger(Verbose)
}
