// Package subtitle parses recognizer output in SRT form into segments.
package subtitle

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	apperrors "yt-transcribe/internal/app/errors"
	"yt-transcribe/internal/app/model"
)

const timeArrow = "-->"

var srtTimeRegexp = regexp.MustCompile(`^(\d+):([0-5]\d):([0-5]\d)[,.](\d{1,3})$`)

// record is one blank-line separated block, with the input line its first line sits on.
type record struct {
	index     int
	firstLine int
	lines     []string
}

// Parse reads SRT content and returns its segments in input order.
// CRLF and LF line endings, a leading BOM and any number of blank lines
// between or after records are accepted. Any record that cannot be turned
// into a segment aborts the parse with a *MalformedSegmentError.
func Parse(r io.Reader) ([]model.Segment, error) {
	records, err := splitRecords(r)
	if err != nil {
		return nil, err
	}

	segments := make([]model.Segment, 0, len(records))
	for _, rec := range records {
		seg, err := parseRecord(rec)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// ParseFile parses the SRT file at path.
func ParseFile(path string) ([]model.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrNoSubtitleFile.Error())
	}
	defer f.Close()

	segments, err := Parse(f)
	if err != nil {
		return nil, apperrors.Wrapf(err, "parse %s", filepath.Base(path))
	}
	return segments, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(content string) ([]model.Segment, error) {
	return Parse(strings.NewReader(content))
}

func splitRecords(r io.Reader) ([]record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		records []record
		current *record
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			if current != nil {
				records = append(records, *current)
				current = nil
			}
			continue
		}
		if current == nil {
			current = &record{index: len(records) + 1, firstLine: lineNo}
		}
		current.lines = append(current.lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		records = append(records, *current)
	}
	return records, nil
}

func parseRecord(rec record) (model.Segment, error) {
	malformed := func(offset int, reason string) error {
		return &apperrors.MalformedSegmentError{Record: rec.index, Line: rec.firstLine + offset, Reason: reason}
	}

	if _, err := strconv.Atoi(strings.TrimSpace(rec.lines[0])); err != nil {
		return model.Segment{}, malformed(0, "expected numeric sequence id, got "+strconv.Quote(rec.lines[0]))
	}
	if len(rec.lines) < 2 {
		return model.Segment{}, malformed(0, "missing time range")
	}

	start, end, err := parseTimeRange(rec.lines[1])
	if err != nil {
		return model.Segment{}, malformed(1, err.Error())
	}

	textLines := make([]string, 0, len(rec.lines)-2)
	for _, l := range rec.lines[2:] {
		if t := strings.TrimSpace(l); t != "" {
			textLines = append(textLines, t)
		}
	}
	if len(textLines) == 0 {
		return model.Segment{}, malformed(1, "missing text")
	}

	return model.Segment{
		StartSeconds: start,
		EndSeconds:   end,
		Text:         strings.Join(textLines, " "),
	}, nil
}

func parseTimeRange(line string) (float64, float64, error) {
	parts := strings.Split(line, timeArrow)
	if len(parts) != 2 {
		return 0, 0, apperrors.Newf("invalid time range %q", line)
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	// Position hints such as "X1:100" may follow the end time.
	endFields := strings.Fields(parts[1])
	if len(endFields) == 0 {
		return 0, 0, apperrors.Newf("invalid time range %q", line)
	}
	end, err := ParseTimestamp(endFields[0])
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, apperrors.Newf("end %s is before start %s", strings.TrimSpace(endFields[0]), strings.TrimSpace(parts[0]))
	}
	return start, end, nil
}

// ParseTimestamp converts an SRT timestamp (HH:MM:SS,mmm) to seconds.
// A '.' millisecond separator is accepted as well.
func ParseTimestamp(ts string) (float64, error) {
	m := srtTimeRegexp.FindStringSubmatch(strings.TrimSpace(ts))
	if m == nil {
		return 0, apperrors.Newf("invalid timestamp %q", strings.TrimSpace(ts))
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	// "5" after the comma means 500ms, not 5ms.
	ms, _ := strconv.Atoi((m[4] + "00")[:3])

	totalMs := ((h*60+mins)*60+sec)*1000 + ms
	return float64(totalMs) / 1000, nil
}
