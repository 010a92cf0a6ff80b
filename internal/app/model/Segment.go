package model

// Segment is one timed span of recognized speech.
type Segment struct {
	StartSeconds float64
	EndSeconds   float64
	Text         string
}

// ParagraphGroup is a contiguous run of segments rendered as one paragraph.
// Segments is never empty.
type ParagraphGroup struct {
	Segments []Segment
}

// StartSeconds returns the start of the first segment.
func (g ParagraphGroup) StartSeconds() float64 {
	if len(g.Segments) == 0 {
		return 0
	}
	return g.Segments[0].StartSeconds
}
