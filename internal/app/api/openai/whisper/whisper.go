package whisper

import (
	"context"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"yt-transcribe/internal/app/audio"
	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
)

// MaxUploadBytes is the transcription endpoint's file size limit.
const MaxUploadBytes = 25 << 20

// RemoteRecognizer implements remote transcription using the OpenAI API.
type RemoteRecognizer struct {
	client   *openai.Client
	model    string
	language string
	tools    *audio.Tools
	logger   *zap.Logger
}

// NewRemoteRecognizer creates a new RemoteRecognizer instance. tools, when
// set, is used to compress audio that exceeds MaxUploadBytes.
func NewRemoteRecognizer(client *openai.Client, model, language string, tools *audio.Tools, logger *zap.Logger) *RemoteRecognizer {
	if model == "" {
		model = openai.Whisper1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteRecognizer{client: client, model: model, language: language, tools: tools, logger: logger}
}

// Recognize uploads the audio and returns the verbose JSON segments.
func (rr *RemoteRecognizer) Recognize(ctx context.Context, inputFilePath string) ([]model.Segment, error) {
	uploadPath, err := rr.prepareUpload(ctx, inputFilePath)
	if err != nil {
		return nil, err
	}

	req := openai.AudioRequest{
		Model:    rr.model,
		FilePath: uploadPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: rr.language,
	}
	rr.logger.Debug("creating transcription", zap.String("audio", uploadPath), zap.String("model", rr.model))

	resp, err := rr.client.CreateTranscription(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, apperrors.ErrCancelled
		}
		return nil, apperrors.Wrap(err, apperrors.ErrRecognizeFailed.Error())
	}

	segments := make([]model.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		if s.End < s.Start || s.Start < 0 {
			return nil, &apperrors.MalformedSegmentError{
				Record: s.ID + 1,
				Reason: "invalid time range in API response",
			}
		}
		text := strings.TrimSpace(s.Text)
		if text == "" {
			return nil, &apperrors.MalformedSegmentError{Record: s.ID + 1, Reason: "missing text"}
		}
		segments = append(segments, model.Segment{
			StartSeconds: s.Start,
			EndSeconds:   s.End,
			Text:         text,
		})
	}
	return segments, nil
}

func (rr *RemoteRecognizer) prepareUpload(ctx context.Context, inputFilePath string) (string, error) {
	info, err := os.Stat(inputFilePath)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrRecognizeFailed.Error())
	}
	if info.Size() <= MaxUploadBytes || rr.tools == nil {
		return inputFilePath, nil
	}

	rr.logger.Info("audio exceeds upload limit, compressing",
		zap.String("audio", inputFilePath), zap.Int64("bytes", info.Size()))
	compressed, err := rr.tools.ConvertToMp3(ctx, inputFilePath)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrRecognizeFailed.Error())
	}
	return compressed, nil
}
