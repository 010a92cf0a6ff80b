// Package transcript turns recognized segments into a markdown transcript.
package transcript

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"yt-transcribe/internal/app/model"
)

const (
	// UnknownPlaceholder stands in for missing metadata fields.
	UnknownPlaceholder = "Unknown"
	dateLayout         = "2006-01-02"
)

// TimestampMode selects how timestamps are placed in the transcript body.
type TimestampMode int

const (
	NoTimestamps TimestampMode = iota
	// GroupTimestamps prefixes each paragraph with its first segment's start.
	GroupTimestamps
	// SegmentTimestamps puts every segment on its own timestamped line.
	SegmentTimestamps
)

// RenderOptions controls the transcript body.
type RenderOptions struct {
	Timestamps TimestampMode
}

// Render builds the markdown document. The output depends only on its
// arguments. Missing metadata renders as UnknownPlaceholder; the only errors
// come from negative durations or start times.
func Render(meta model.TranscriptMetadata, groups []model.ParagraphGroup, opts RenderOptions) (string, error) {
	duration, err := FormatTimestamp(meta.DurationSeconds)
	if err != nil {
		return "", err
	}

	lines := []string{
		"# Transcript: " + orUnknown(meta.Title),
		"",
		"**Source:** " + orUnknown(meta.SourceURL),
		"**Duration:** " + duration,
		"**Transcribed:** " + formatDate(meta),
		"",
		"---",
		"",
		"## Transcript",
	}

	for _, group := range groups {
		paragraph, err := renderParagraph(group, opts.Timestamps)
		if err != nil {
			return "", err
		}
		if paragraph == "" {
			continue
		}
		lines = append(lines, "", paragraph)
	}

	return strings.Join(lines, "\n") + "\n", nil
}

func renderParagraph(group model.ParagraphGroup, mode TimestampMode) (string, error) {
	switch mode {
	case GroupTimestamps:
		text := joinSegmentText(group.Segments)
		if text == "" {
			return "", nil
		}
		ts, err := FormatTimestamp(group.StartSeconds())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%s] %s", ts, text), nil

	case SegmentTimestamps:
		var lines []string
		for _, seg := range group.Segments {
			text := strings.TrimSpace(seg.Text)
			if text == "" {
				continue
			}
			ts, err := FormatTimestamp(seg.StartSeconds)
			if err != nil {
				return "", err
			}
			lines = append(lines, fmt.Sprintf("[%s] %s", ts, text))
		}
		return strings.Join(lines, "\n"), nil

	default:
		return joinSegmentText(group.Segments), nil
	}
}

func joinSegmentText(segments []model.Segment) string {
	texts := lo.FilterMap(segments, func(seg model.Segment, _ int) (string, bool) {
		text := strings.TrimSpace(seg.Text)
		return text, text != ""
	})
	return strings.Join(texts, " ")
}

func orUnknown(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return UnknownPlaceholder
	}
	return s
}

func formatDate(meta model.TranscriptMetadata) string {
	if meta.TranscribedDate.IsZero() {
		return UnknownPlaceholder
	}
	return meta.TranscribedDate.Format(dateLayout)
}
