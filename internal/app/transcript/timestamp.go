package transcript

import (
	"fmt"
	"math"

	apperrors "yt-transcribe/internal/app/errors"
)

// FormatTimestamp renders seconds as zero-padded MM:SS. Minutes do not roll
// over into hours and fractional seconds are truncated, so 3725.9 is "62:05".
func FormatTimestamp(seconds float64) (string, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", &apperrors.InvalidTimestampError{Seconds: seconds}
	}

	total := int64(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}
