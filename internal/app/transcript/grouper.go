package transcript

import (
	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
)

// DefaultParagraphGapSeconds is the silence, in seconds, that starts a new paragraph.
const DefaultParagraphGapSeconds = 1.5

// Grouper splits a segment sequence into paragraphs wherever the silence
// between two consecutive segments is longer than GapSeconds.
type Grouper struct {
	GapSeconds float64
}

// NewGrouper returns a Grouper using gapSeconds as the split threshold.
func NewGrouper(gapSeconds float64) *Grouper {
	return &Grouper{GapSeconds: gapSeconds}
}

// Group partitions segments into paragraph groups, preserving order.
// Segments must be ordered by start time; they are not re-sorted.
// A gap equal to the threshold does not split, and overlapping segments
// (negative gap) never split.
func (g *Grouper) Group(segments []model.Segment) ([]model.ParagraphGroup, error) {
	if len(segments) == 0 {
		return nil, &apperrors.EmptyInputError{}
	}

	var groups []model.ParagraphGroup
	current := []model.Segment{segments[0]}
	for i := 1; i < len(segments); i++ {
		gap := segments[i].StartSeconds - segments[i-1].EndSeconds
		if gap > g.GapSeconds {
			groups = append(groups, model.ParagraphGroup{Segments: current})
			current = nil
		}
		current = append(current, segments[i])
	}
	groups = append(groups, model.ParagraphGroup{Segments: current})

	return groups, nil
}

// GroupParagraphs groups segments with the default threshold.
func GroupParagraphs(segments []model.Segment) ([]model.ParagraphGroup, error) {
	return NewGrouper(DefaultParagraphGapSeconds).Group(segments)
}
