package analyzer

import (
	"fmt"
)

// ValidationError reports contract text that was rejected before any backend
// call was made. The caller can always recover by adjusting the input.
type ValidationError struct {
	Reason    string // "empty" or "too long"
	WordCount int
	MaxWords  int
}

func (e *ValidationError) Error() string {
	if e.Reason == "empty" {
		return "contract text cannot be empty"
	}
	return fmt.Sprintf("contract exceeds maximum word limit of %d words, current word count: %d", e.MaxWords, e.WordCount)
}

// ParseError reports that no parsing strategy recovered a JSON payload from
// the backend response. Raw carries the original response for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "could not parse JSON payload from model response"
}

// AnalysisError is a terminal failure of a whole analysis: either the backend
// call itself failed, or (combined mode) the response could not be parsed.
type AnalysisError struct {
	Op  string
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
