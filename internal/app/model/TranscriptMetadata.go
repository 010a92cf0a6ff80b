package model

import "time"

type TranscriptMetadata struct {
	Title           string
	SourceURL       string
	DurationSeconds float64
	TranscribedDate time.Time
}
