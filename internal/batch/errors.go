// internal/batch/errors.go
package batch

import (
	"errors"
	"fmt"
)

// Common batch errors
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrDecode            = errors.New("failed to decode document")
	ErrInvalidEntry      = errors.New("invalid entry")
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	ErrCodeFormat     ErrorCode = "FORMAT"
	ErrCodeDecode     ErrorCode = "DECODE"
	ErrCodeValidation ErrorCode = "VALIDATION"
)

// BatchError wraps errors with additional context
type BatchError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Index      int // entry index, -1 for document-level errors
}

// Error implements the error interface
func (e *BatchError) Error() string {
	prefix := string(e.Code)
	if e.Index >= 0 {
		prefix = fmt.Sprintf("%s: entry %d", e.Code, e.Index)
	}
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error
func (e *BatchError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *BatchError) Is(target error) bool {
	if t, ok := target.(*BatchError); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code ErrorCode, index int, msg string, err error) *BatchError {
	return &BatchError{Code: code, Message: msg, Underlying: err, Index: index}
}
