// Package parakeet runs the parakeet-mlx speech recognizer.
package parakeet

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
	"yt-transcribe/internal/app/subtitle"
	"yt-transcribe/internal/app/util/files"
	"yt-transcribe/internal/app/util/shell"
)

// LocalRecognizer shells out to parakeet-mlx and reads back its SRT output.
type LocalRecognizer struct {
	binaryPath string
	run        shell.Runner
	logger     *zap.Logger
}

// NewLocalRecognizer creates a recognizer for the parakeet-mlx binary at binaryPath.
func NewLocalRecognizer(binaryPath string, run shell.Runner, logger *zap.Logger) *LocalRecognizer {
	if run == nil {
		run = shell.Exec
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalRecognizer{binaryPath: binaryPath, run: run, logger: logger}
}

// Recognize writes an SRT file next to audioPath and parses it.
func (lr *LocalRecognizer) Recognize(ctx context.Context, audioPath string) ([]model.Segment, error) {
	outputDir := filepath.Dir(audioPath)
	args := []string{
		audioPath,
		"--output-format", "srt",
		"--output-dir", outputDir,
	}
	lr.logger.Debug("running transcription command", zap.String("command", shell.CommandLine(lr.binaryPath, args...)))

	if _, err := lr.run(ctx, lr.binaryPath, args...); err != nil {
		if ctx.Err() != nil {
			return nil, apperrors.ErrCancelled
		}
		return nil, apperrors.Wrap(err, apperrors.ErrRecognizeFailed.Error())
	}

	srtPath, err := files.FindFirstFile(outputDir, "*.srt")
	if err != nil {
		found := fmt.Errorf("looked in %s, found: %s", outputDir, strings.Join(files.ListDir(outputDir), ", "))
		return nil, apperrors.Wrap(found, apperrors.ErrNoSubtitleFile.Error())
	}

	return subtitle.ParseFile(srtPath)
}
