// Package errors provides the unified error type and factory functions used
// throughout materna. Every layer carries failures as *AppError so that CLI
// output, logging, and tests can inspect a single typed code instead of
// string-matching error text.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the single structured error type used throughout the module.
// It satisfies the standard error interface and supports Go 1.13+ wrapping so
// that errors.Is / errors.As / errors.Unwrap work across layers.
//
// Usage:
//
//	return errors.New(errors.CodeUnsupportedFileType, "file type text/plain is not supported")
//	return errors.Wrap(pdfErr, errors.CodeAcquisitionFailure, "failed to read PDF")
type AppError struct {
	// Code uniquely identifies the failure category.
	Code ErrorCode

	// Message is the primary human-readable description, suitable for
	// direct display to the user.
	Message string

	// Detail carries supplementary context (file names, MIME types, …) that
	// aids debugging without cluttering the primary message.
	Detail string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>", detail omitted when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As
// traversal of the full chain.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil receiver.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf constructs a fresh AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an AppError around an existing error. If err is nil, Wrap
// returns nil so it can be used inline on fallible calls. When err is already
// an *AppError and code is CodeUnknown, the original code is preserved so
// cross-layer propagation does not lose the original classification.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// IsCode reports whether any error in err's chain is an *AppError carrying
// the given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *AppError in err's chain.
// Returns CodeOK for nil and CodeUnknown when no AppError is present.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}
