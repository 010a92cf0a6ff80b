package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"yt-transcribe/internal/app/transcript"
	"yt-transcribe/internal/app/util/files"
)

// Engine names accepted by the engine setting.
const (
	EngineParakeet   = "parakeet"
	EngineWhisperCpp = "whisper_cpp"
	EngineOpenAI     = "openai"
)

const (
	DefaultOpenAIModel = "whisper-1"

	appDirName = "transcribe"
)

// Binaries names the external tools the pipeline shells out to.
type Binaries struct {
	YtDlp      string `yaml:"ytdlp" validate:"required"`
	Parakeet   string `yaml:"parakeet"`
	WhisperCpp string `yaml:"whisper_cpp"`
	FFmpeg     string `yaml:"ffmpeg" validate:"required"`
	FFprobe    string `yaml:"ffprobe" validate:"required"`
}

// Settings is the merged configuration: defaults, then the YAML file, then
// the environment, then command-line flags.
type Settings struct {
	Engine              string   `yaml:"engine" validate:"oneof=parakeet whisper_cpp openai"`
	ParagraphGapSeconds float64  `yaml:"paragraph_gap_seconds" validate:"gte=0"`
	MaxFilenameLength   int      `yaml:"max_filename_length" validate:"gte=16,lte=255"`
	TitleSuffix         string   `yaml:"title_suffix" validate:"required"`
	KebabSuffix         string   `yaml:"kebab_suffix" validate:"required"`
	PlaceholderTitle    string   `yaml:"placeholder_title" validate:"required"`
	Binaries            Binaries `yaml:"binaries"`
	WhisperCppModel     string   `yaml:"whisper_cpp_model" validate:"required_if=Engine whisper_cpp"`
	OpenAIModel         string   `yaml:"openai_model"`
	Language            string   `yaml:"language"`
	HistoryDB           string   `yaml:"history_db"`

	OpenAIAPIKey string `yaml:"-" validate:"required_if=Engine openai"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Engine:              EngineParakeet,
		ParagraphGapSeconds: transcript.DefaultParagraphGapSeconds,
		MaxFilenameLength:   files.DefaultMaxFilenameLength,
		TitleSuffix:         files.DefaultTitleSuffix,
		KebabSuffix:         files.DefaultKebabSuffix,
		PlaceholderTitle:    files.DefaultPlaceholder,
		Binaries: Binaries{
			YtDlp:      "yt-dlp",
			Parakeet:   "parakeet-mlx",
			WhisperCpp: "whisper-cli",
			FFmpeg:     "ffmpeg",
			FFprobe:    "ffprobe",
		},
		OpenAIModel: DefaultOpenAIModel,
		HistoryDB:   defaultAppPath("history.db"),
	}
}

// DefaultConfigPath is the settings file read when no path is given.
func DefaultConfigPath() string {
	return defaultAppPath("config.yaml")
}

func defaultAppPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("."+appDirName, name)
	}
	return filepath.Join(dir, appDirName, name)
}

// LoadSettings returns defaults overlaid with the YAML file at path. An empty
// path falls back to $TRANSCRIBE_CONFIG and then DefaultConfigPath; only an
// explicitly named file is required to exist.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	explicit := true
	if path == "" {
		path = getEnvOrDefault(EnvConfigPath, "")
	}
	if path == "" {
		path = DefaultConfigPath()
		explicit = false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := settings.decode(content); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return settings, nil
}

func (s *Settings) decode(content []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overlays environment variables on the settings.
func (s *Settings) ApplyEnv() {
	s.Engine = getEnvOrDefault(EnvEngine, s.Engine)
	s.Binaries.YtDlp = getEnvOrDefault(EnvYtDlpBinary, s.Binaries.YtDlp)
	s.Binaries.Parakeet = getEnvOrDefault(EnvParakeetBinary, s.Binaries.Parakeet)
	s.Binaries.WhisperCpp = getEnvOrDefault(EnvWhisperCppBinary, s.Binaries.WhisperCpp)
	s.WhisperCppModel = getEnvOrDefault(EnvWhisperCppModel, s.WhisperCppModel)
	s.HistoryDB = getEnvOrDefault(EnvHistoryDB, s.HistoryDB)
}

// Marshal renders the settings as YAML, e.g. for `transcribe config`.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
