package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeJobNotFound    = "EXP001"
	ErrCodeCaptureFailed  = "EXP002"
	ErrCodeAssemblyFailed = "EXP003"
	ErrCodeNotReady       = "EXP004"
)

// Errors
var (
	ErrJobNotFound    = errors.New("export job not found")
	ErrCaptureFailed  = errors.New("capture could not produce a bitmap")
	ErrAssemblyFailed = errors.New("document assembly failed")
	ErrNotReady       = errors.New("export artifact not ready")
)

// ExportError custom error type
type ExportError struct {
	Code    string
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewJobNotFoundError() *ExportError {
	return &ExportError{
		Code:    ErrCodeJobNotFound,
		Message: "Export job not found or expired",
		Err:     ErrJobNotFound,
	}
}

func NewNotReadyError(status Status) *ExportError {
	return &ExportError{
		Code:    ErrCodeNotReady,
		Message: fmt.Sprintf("Export is %s, not ready for download", status),
		Err:     ErrNotReady,
	}
}
