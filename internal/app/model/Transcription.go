package model

import "time"

// Transcription is one completed run as recorded in the history store.
type Transcription struct {
	ID              string
	SourceURL       string
	Title           string
	OutputPath      string
	DurationSeconds float64
	SegmentCount    int
	ParagraphCount  int
	Engine          string
	CreatedAt       time.Time
}
