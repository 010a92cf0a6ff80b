package api

import (
	"context"

	"yt-transcribe/internal/app/model"
)

// Recognizer converts an audio file into time-stamped speech segments,
// ordered by start time.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) ([]model.Segment, error)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context, audioPath string) ([]model.Segment, error)

func (f RecognizerFunc) Recognize(ctx context.Context, audioPath string) ([]model.Segment, error) {
	return f(ctx, audioPath)
}
