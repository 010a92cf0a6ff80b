package source

import "regexp"

var youTubeURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:.*&)?v=`),
	regexp.MustCompile(`youtu\.be/`),
	regexp.MustCompile(`youtube\.com/embed/`),
	regexp.MustCompile(`youtube\.com/v/`),
	regexp.MustCompile(`youtube\.com/shorts/`),
	regexp.MustCompile(`youtube\.com/live/`),
}

// IsYouTubeURL reports whether url looks like a single YouTube video.
func IsYouTubeURL(url string) bool {
	for _, p := range youTubeURLPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}
