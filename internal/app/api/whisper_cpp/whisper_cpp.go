package whisper_cpp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"yt-transcribe/internal/app/audio"
	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
	"yt-transcribe/internal/app/subtitle"
	"yt-transcribe/internal/app/util/shell"
)

// LocalRecognizer implements local transcription, using the whisper.cpp CLI binary.
type LocalRecognizer struct {
	binaryPath string
	modelPath  string
	language   string
	tools      *audio.Tools
	logger     *zap.Logger
}

// NewLocalRecognizer creates a new instance of LocalRecognizer. An empty
// language lets whisper.cpp detect it.
func NewLocalRecognizer(binaryPath, modelPath, language string, tools *audio.Tools, logger *zap.Logger) *LocalRecognizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalRecognizer{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
		tools:      tools,
		logger:     logger,
	}
}

// Recognize converts the input to 16kHz WAV when needed, runs whisper.cpp with SRT output and parses it.
func (lr *LocalRecognizer) Recognize(ctx context.Context, inputFilePath string) ([]model.Segment, error) {
	lr.logger.Debug("starting transcription", zap.String("audio", inputFilePath))

	is16kHzWav, err := lr.tools.Is16kHzWavFile(ctx, inputFilePath)
	if err != nil {
		return nil, apperrors.Wrapf(err, "error checking input file")
	}

	if !is16kHzWav {
		lr.logger.Debug("input is not 16kHz WAV, converting")
		inputFilePath, err = lr.tools.ConvertTo16kHzWav(ctx, inputFilePath)
		if err != nil {
			return nil, apperrors.Wrapf(err, "error converting input file")
		}
	}

	outputBase := strings.TrimSuffix(inputFilePath, ".wav")
	args := []string{
		"-m", lr.modelPath,
		"-f", inputFilePath,
		"-osrt",
		"-of", outputBase,
		"--no-prints",
	}
	if lr.language != "" {
		args = append(args, "-l", lr.language)
	} else {
		args = append(args, "-l", "auto")
	}

	lr.logger.Debug("running transcription command", zap.String("command", shell.CommandLine(lr.binaryPath, args...)))

	if _, err := lr.tools.Run(ctx, lr.binaryPath, args...); err != nil {
		if ctx.Err() != nil {
			return nil, apperrors.ErrCancelled
		}
		return nil, apperrors.Wrap(err, apperrors.ErrRecognizeFailed.Error())
	}

	return subtitle.ParseFile(outputBase + ".srt")
}
