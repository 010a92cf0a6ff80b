package files

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_TitleCase(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "My Great Video", "My Great Video"},
		{"illegal characters", `AC/DC: "Live" <at> Wembley? | Part*1\2`, "AC DC Live at Wembley Part 1 2"},
		{"collapses whitespace", "  lots   of\t\tspace\n here ", "lots of space here"},
		{"control characters", "bell\x07 and\x00null", "bell andnull"},
		{"emoji kept", "Cats 🐱 rule", "Cats 🐱 rule"},
		{"trailing dots", "...hidden.", "hidden"},
		{"empty", "", "untitled"},
		{"all illegal", "///:::", "untitled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.title, false))
		})
	}
}

func TestSanitize_KebabCase(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "My Great Video", "my-great-video"},
		{"illegal characters", `AC/DC: "Live" at Wembley?`, "ac-dc-live-at-wembley"},
		{"existing hyphens", "Part 1 - The Beginning", "part-1-the-beginning"},
		{"edges", "--  Hello  --", "hello"},
		{"unicode", "Ünïcode Título", "ünïcode-título"},
		{"empty", "", "untitled"},
		{"all illegal", "///:::", "untitled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.title, true))
		})
	}
}

func TestSanitize_NeverEmpty(t *testing.T) {
	inputs := []string{"", " ", "\t\n", "///:::", `\/:*?"<>|`, "-----", "...", "\x00\x01\x02", ". - ."}
	for _, in := range inputs {
		for _, kebab := range []bool{false, true} {
			got := SanitizeFilename(in, kebab)
			assert.NotEmpty(t, got, "input %q kebab=%v", in, kebab)
			assert.False(t, strings.ContainsAny(got, illegalFilenameChars), "input %q kebab=%v got %q", in, kebab, got)
		}
	}
}

func TestSanitize_KebabIdempotent(t *testing.T) {
	inputs := []string{
		"My Great Video",
		`AC/DC: "Live" at Wembley?`,
		"  --weird -- spacing--  ",
		"ÀÉÎ ÕÜ",
		"a.b.c.",
		strings.Repeat("long title words ", 20),
		"",
		"///:::",
	}
	s := NewSanitizer()
	for _, in := range inputs {
		once := s.Sanitize(in, true)
		assert.Equal(t, once, s.Sanitize(once, true), "input %q", in)
	}
}

func TestSanitize_MaxLength(t *testing.T) {
	s := NewSanitizer()
	long := strings.Repeat("word ", 40)

	title := s.Sanitize(long, false)
	assert.LessOrEqual(t, utf8.RuneCountInString(title), DefaultMaxFilenameLength)
	assert.False(t, strings.HasSuffix(title, " "))

	kebab := s.Sanitize(long, true)
	assert.LessOrEqual(t, utf8.RuneCountInString(kebab), DefaultMaxFilenameLength)
	assert.False(t, strings.HasSuffix(kebab, "-"))

	s.MaxLength = 0
	assert.Equal(t, strings.TrimSpace(long), s.Sanitize(long, false))
}

func TestSuggestedFilename(t *testing.T) {
	s := NewSanitizer()
	assert.Equal(t, "My Video Transcript.md", s.SuggestedFilename("My: Video", false))
	assert.Equal(t, "my-video-transcript.md", s.SuggestedFilename("My: Video", true))
	assert.Equal(t, "untitled Transcript.md", s.SuggestedFilename("???", false))

	s.Placeholder = "Video Notes"
	assert.Equal(t, "video-notes-transcript.md", s.SuggestedFilename("", true))
}
