package testutil

import (
	"time"

	"yt-transcribe/internal/app/model"
)

const TestVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// TestSegments groups into two paragraphs at the default 1.5s gap.
var TestSegments = []model.Segment{
	{StartSeconds: 0.0, EndSeconds: 2.0, Text: "Hello there."},
	{StartSeconds: 2.2, EndSeconds: 4.0, Text: "How are you?"},
	{StartSeconds: 6.0, EndSeconds: 8.0, Text: "Great to see you."},
}

var TestVideoInfo = model.VideoInfo{
	ID:         "dQw4w9WgXcQ",
	Title:      "A Talk: Part 1",
	Duration:   125,
	WebpageURL: TestVideoURL,
	Uploader:   "Test Channel",
	Extractor:  "youtube",
}

// TestTranscriptions are history rows, newest first.
var TestTranscriptions = []model.Transcription{
	{
		ID:              "3b1f9c1e-0000-4000-8000-000000000002",
		SourceURL:       "https://youtu.be/second",
		Title:           "Second Talk",
		OutputPath:      "/tmp/Second Talk Transcript.md",
		DurationSeconds: 600,
		SegmentCount:    120,
		ParagraphCount:  18,
		Engine:          "whisper_cpp",
		CreatedAt:       time.Date(2024, 1, 16, 14, 45, 0, 0, time.UTC),
	},
	{
		ID:              "3b1f9c1e-0000-4000-8000-000000000001",
		SourceURL:       TestVideoURL,
		Title:           "A Talk: Part 1",
		OutputPath:      "/tmp/A Talk Part 1 Transcript.md",
		DurationSeconds: 125,
		SegmentCount:    3,
		ParagraphCount:  2,
		Engine:          "parakeet",
		CreatedAt:       time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	},
}
