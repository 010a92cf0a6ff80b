package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"yt-transcribe/internal/app/model"
	"yt-transcribe/internal/app/util/shell"
)

// Tools wraps ffprobe and ffmpeg.
type Tools struct {
	FFmpeg  string
	FFprobe string
	Run     shell.Runner
	Logger  *zap.Logger
}

// NewTools returns Tools for the given binaries, running them with shell.Exec.
func NewTools(ffmpeg, ffprobe string, logger *zap.Logger) *Tools {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tools{FFmpeg: ffmpeg, FFprobe: ffprobe, Run: shell.Exec, Logger: logger}
}

// GetAudioDuration returns the container duration of filePath in seconds.
func (t *Tools) GetAudioDuration(ctx context.Context, filePath string) (float64, error) {
	output, err := t.Run(ctx, t.FFprobe, "-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", filePath)
	if err != nil {
		return 0, err
	}
	return ParseDuration(string(output))
}

// ParseDuration parses ffprobe's bare duration output.
func ParseDuration(output string) (float64, error) {
	duration, err := strconv.ParseFloat(strings.TrimSpace(output), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ffprobe duration %q: %w", strings.TrimSpace(output), err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("invalid ffprobe duration %q: negative", strings.TrimSpace(output))
	}
	return duration, nil
}

// Is16kHzWavFile reports whether filePath is 16 kHz signed 16-bit PCM, the input whisper.cpp expects.
func (t *Tools) Is16kHzWavFile(ctx context.Context, filePath string) (bool, error) {
	output, err := t.Run(ctx, t.FFprobe, "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	if err != nil {
		return false, err
	}
	return is16kHzPCM(output)
}

func is16kHzPCM(probeJSON []byte) (bool, error) {
	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(probeJSON, &probeOutput); err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}
	return false, nil
}

// ConvertTo16kHzWav writes a 16 kHz mono copy of inputFilePath next to it and returns its path.
// An existing conversion is reused.
func (t *Tools) ConvertTo16kHzWav(ctx context.Context, inputFilePath string) (string, error) {
	outputWavPath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"

	if _, err := os.Stat(outputWavPath); err == nil {
		t.Logger.Debug("16kHz WAV already exists, skipping conversion", zap.String("audio", outputWavPath))
		return outputWavPath, nil
	}

	ext := strings.ToLower(filepath.Ext(inputFilePath))
	if ext != ".mp3" && ext != ".m4a" && ext != ".wav" && ext != ".webm" && ext != ".opus" {
		return "", fmt.Errorf("unsupported audio format not in [mp3,m4a,wav,webm,opus]: %s", ext)
	}

	t.Logger.Debug("converting to 16kHz WAV", zap.String("audio", inputFilePath))
	_, err := t.Run(ctx, t.FFmpeg, "-y", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputWavPath)
	if err != nil {
		return "", fmt.Errorf("FFmpeg error: %w", err)
	}

	return outputWavPath, nil
}

// ConvertToMp3 writes a low-bitrate mono MP3 copy of inputFilePath, small
// enough for upload-limited APIs, and returns its path.
func (t *Tools) ConvertToMp3(ctx context.Context, inputFilePath string) (string, error) {
	mp3FilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + ".mp3"
	if _, err := os.Stat(mp3FilePath); err == nil {
		t.Logger.Debug("MP3 already exists, skipping conversion", zap.String("audio", mp3FilePath))
		return mp3FilePath, nil
	}

	t.Logger.Debug("converting to mp3", zap.String("audio", inputFilePath))
	_, err := t.Run(ctx, t.FFmpeg, "-y", "-i", inputFilePath, "-vn", "-ac", "1", "-acodec", "libmp3lame", "-b:a", "48k", mp3FilePath)
	if err != nil {
		return "", fmt.Errorf("FFmpeg error: %w", err)
	}
	return mp3FilePath, nil
}
