package volby

import "fmt"

// ValidationError rejects the run before any scraping starts.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// EmptyResultError means a step that every later step depends on produced
// nothing.
type EmptyResultError struct {
	What string
	URL  string
}

func (e *EmptyResultError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("no %s found on %s", e.What, e.URL)
	}
	return fmt.Sprintf("no %s found", e.What)
}

// ParseError is a field that was missing, repeated or not numeric.
type ParseError struct {
	Field string
	URL   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s on %s: %v", e.Field, e.URL, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// AlignmentError reports sequences that would be merged by position but do
// not line up.
type AlignmentError struct {
	Message string
}

func (e *AlignmentError) Error() string {
	return "misaligned results: " + e.Message
}

// TransportError wraps a failed download.
type TransportError struct {
	URL    string
	Status int
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("downloading %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("downloading %s: unexpected status %d", e.URL, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Cause }
