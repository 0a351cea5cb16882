// Package pipeline provides the high-level orchestration for converting resume HTML into a Word document.
package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is reported when the HTML content is empty or whitespace only.
var ErrEmptyInput = errors.New("html content cannot be empty")

// InputError represents input rejected before any processing begins
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
