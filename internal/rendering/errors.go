// Package rendering writes laid-out resumes as WordprocessingML (.docx) packages.
package rendering

import "fmt"

// RenderError represents a failure while building the document package in memory
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// EmissionError represents a failure writing the finished document to its destination
type EmissionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *EmissionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("emission error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("emission error for %s: %s", e.Path, e.Message)
}

func (e *EmissionError) Unwrap() error {
	return e.Cause
}
