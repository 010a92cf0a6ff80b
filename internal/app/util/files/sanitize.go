package files

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	DefaultMaxFilenameLength = 80
	DefaultPlaceholder       = "untitled"
	DefaultTitleSuffix       = " Transcript.md"
	DefaultKebabSuffix       = "-transcript.md"

	illegalFilenameChars = `/\:*?"<>|`
)

// Sanitizer turns free-text titles into filename components.
type Sanitizer struct {
	// MaxLength caps the sanitized title in runes, before the suffix. Zero disables the cap.
	MaxLength   int
	Placeholder string
	TitleSuffix string
	KebabSuffix string
}

// NewSanitizer returns a Sanitizer with the default length cap, placeholder and suffixes.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		MaxLength:   DefaultMaxFilenameLength,
		Placeholder: DefaultPlaceholder,
		TitleSuffix: DefaultTitleSuffix,
		KebabSuffix: DefaultKebabSuffix,
	}
}

// Sanitize returns a non-empty filename-safe version of title.
// Title mode keeps casing and single spaces; kebab mode lower-cases and joins words with hyphens.
func (s *Sanitizer) Sanitize(title string, kebab bool) string {
	var safe string
	if kebab {
		safe = s.kebabCase(title)
	} else {
		safe = s.titleCase(title)
	}
	if safe == "" {
		return s.placeholder(kebab)
	}
	return safe
}

// SuggestedFilename is the sanitized title plus the mode's suffix.
func (s *Sanitizer) SuggestedFilename(title string, kebab bool) string {
	if kebab {
		return s.Sanitize(title, true) + s.KebabSuffix
	}
	return s.Sanitize(title, false) + s.TitleSuffix
}

func (s *Sanitizer) titleCase(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalFilenameChars, r) {
			return ' '
		}
		return r
	}, stripControl(title))

	safe := strings.Join(strings.Fields(cleaned), " ")
	safe = strings.Trim(safe, " .")
	return strings.Trim(truncateRunes(safe, s.MaxLength), " .")
}

func (s *Sanitizer) kebabCase(title string) string {
	lowered := cases.Lower(language.Und).String(stripControl(title))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range lowered {
		if r == '-' || unicode.IsSpace(r) || strings.ContainsRune(illegalFilenameChars, r) {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && b.Len() > 0 {
			b.WriteRune('-')
		}
		pendingHyphen = false
		b.WriteRune(r)
	}

	safe := strings.Trim(b.String(), "-.")
	return strings.Trim(truncateRunes(safe, s.MaxLength), "-.")
}

func (s *Sanitizer) placeholder(kebab bool) string {
	p := s.Placeholder
	if kebab {
		p = s.kebabCase(p)
	} else {
		p = s.titleCase(p)
	}
	if p == "" {
		return DefaultPlaceholder
	}
	return p
}

// SanitizeFilename sanitizes title with the default settings.
func SanitizeFilename(title string, kebab bool) string {
	return NewSanitizer().Sanitize(title, kebab)
}

// stripControl drops control characters other than whitespace, which the
// callers treat as word separators.
func stripControl(s string) string {
	control := runes.Predicate(func(r rune) bool {
		return unicode.IsControl(r) && !unicode.IsSpace(r)
	})
	out, _, err := transform.String(runes.Remove(control), s)
	if err != nil {
		return s
	}
	return strings.ToValidUTF8(out, "")
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
