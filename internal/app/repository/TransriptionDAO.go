package repository

import (
	"context"

	"yt-transcribe/internal/app/model"
)

// TranscriptionDAO stores the history of completed transcriptions.
type TranscriptionDAO interface {
	Close() error

	// Record stores t, assigning an ID and creation time when they are unset.
	Record(ctx context.Context, t *model.Transcription) error

	// List returns the most recent transcriptions first. A limit <= 0 returns all of them.
	List(ctx context.Context, limit int) ([]model.Transcription, error)
}
