package generation

import "fmt"

// APICallError represents an error from the generation service.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error parsing the model response into missions.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ResultError represents a structurally valid response that is still
// unusable, such as too few missions. The caller falls back to the static
// mission set.
type ResultError struct {
	Message string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("unusable generation result: %s", e.Message)
}
