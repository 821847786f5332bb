// Package errors provides structured error types for the gge library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - SHAPE_*/TYPE_*: malformed 2D values
//   - DETACHED_*/OVERSIZED_*: tree layout invariant violations
//   - DUPLICATE_*/NOT_*/ALREADY_*: child registry misuse
//   - TEXT_*/NO_FITTING_*: text layout failures
//   - FONT_*/IMAGE_*: asset resolution failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOversizedChild, "child %q exceeds parent", name)
//	if errors.Is(err, errors.ErrCodeOversizedChild) {
//	    // Handle compositing error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeImageSource, origErr, "failed to open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Malformed 2D values
	ErrCodeShapeMismatch    Code = "SHAPE_MISMATCH"
	ErrCodeTypeMismatch     Code = "TYPE_MISMATCH"
	ErrCodeNonPositiveValue Code = "NON_POSITIVE_VALUE"
	ErrCodeInvalidArgument  Code = "INVALID_ARGUMENT"

	// Layout and compositing invariant violations
	ErrCodeDetachedPosition Code = "DETACHED_POSITION"
	ErrCodeOversizedChild   Code = "OVERSIZED_CHILD"
	ErrCodeInvalidEnum      Code = "INVALID_ENUM_VALUE"

	// Child registry misuse
	ErrCodeDuplicateName   Code = "DUPLICATE_NAME"
	ErrCodeAlreadyParented Code = "ALREADY_PARENTED"
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeNotAGraphic     Code = "NOT_A_GRAPHIC"

	// Text layout failures
	ErrCodeTextOverflow  Code = "TEXT_OVERFLOW"
	ErrCodeNoFittingSize Code = "NO_FITTING_SIZE"

	// Asset resolution failures
	ErrCodeFontNotFound Code = "FONT_NOT_FOUND"
	ErrCodeImageSource  Code = "IMAGE_SOURCE"

	// Manifest and path validation
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
