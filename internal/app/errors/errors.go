package errors

import (
	"fmt"
)

// Common error types
var (
	// Input errors
	ErrInvalidURL    = New("not a supported video URL")
	ErrInvalidConfig = New("invalid configuration")
	ErrUnknownEngine = New("unknown recognizer engine")
	ErrMissingAPIKey = New("API key is required")

	// Collaborator errors
	ErrFetchFailed     = New("fetching video failed")
	ErrDownloadFailed  = New("downloading audio failed")
	ErrRecognizeFailed = New("transcription failed")
	ErrNoSubtitleFile  = New("could not find transcription output file")

	// Output errors
	ErrOutputExists    = New("output file already exists")
	ErrFileWriteFailed = New("file write failed")
	ErrCancelled       = New("cancelled")

	// History errors
	ErrQueryFailed  = New("query failed")
	ErrInsertFailed = New("insert failed")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// EmptyInputError reports that the recognizer produced no segments.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "transcript has no segments"
}

// InvalidTimestampError reports a time offset that is negative, NaN or infinite.
type InvalidTimestampError struct {
	Seconds float64
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %g seconds", e.Seconds)
}

// MalformedSegmentError reports a subtitle record that could not be parsed.
// Record is the 1-based block position, Line the 1-based line in the input.
type MalformedSegmentError struct {
	Record int
	Line   int
	Reason string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf("malformed segment in record %d (line %d): %s", e.Record, e.Line, e.Reason)
}

// Helper functions for common patterns

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf("%s is required", field)
}

// AlreadyExists returns an error for items that already exist
func AlreadyExists(itemType string, identifier string) error {
	return Wrapf(ErrOutputExists, "%s %s", itemType, identifier)
}
