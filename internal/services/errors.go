package services

import "fmt"

// ExtractionError means the resume PDF could not be read or contained no
// extractable text. Fatal for the submission.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// TransportError means the hosted model call failed (network, auth, quota,
// empty reply). There is no retry; the caller reports it to the user.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("model request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ParseError means the model reply, after fence stripping, was not valid
// JSON. Raw keeps the offending text for diagnostic display.
type ParseError struct {
	Raw   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid model reply: %v\nResponse: %s", e.Cause, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
