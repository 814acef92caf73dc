package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingHeader is returned when the stream ends before the header line.
	ErrMissingHeader = errors.New("missing header line")
	// ErrMalformedHeader is returned when the header is not "<threads> <duration>".
	ErrMalformedHeader = errors.New("malformed header line")
	// ErrMalformedTiming is returned when a timing line is not "<thread> <start> <end>".
	ErrMalformedTiming = errors.New("malformed timing line")
	// ErrTruncated is returned when a task name line has no timing line after it.
	ErrTruncated = errors.New("task name without timing line")
)

// ParseError describes a malformed line in a profiling file.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Text is the offending line as read.
	Text string
	// Err is one of the package sentinels.
	Err error
	// Cause is the underlying conversion error, if any.
	Cause error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d: %v", e.Line, e.Err)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if e.Text != "" {
		fmt.Fprintf(&b, " (%q)", e.Text)
	}
	return b.String()
}

// Unwrap exposes both the sentinel and the conversion error to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// ValidationError aggregates the issues found by Check in strict mode.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "invalid profile: " + e.Issues[0].String()
	}
	return fmt.Sprintf("invalid profile: %d issues, first: %s", len(e.Issues), e.Issues[0].String())
}
