package model

// VideoInfo is the subset of `yt-dlp --dump-json` output the pipeline reads.
type VideoInfo struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Duration   float64 `json:"duration"`
	WebpageURL string  `json:"webpage_url"`
	Uploader   string  `json:"uploader"`
	Extractor  string  `json:"extractor"`
}
