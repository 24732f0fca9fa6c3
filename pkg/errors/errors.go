// Package errors provides structured error types for archtower.
//
// Every failing operation of the model, view and style packages returns an
// *Error carrying a machine-readable [Code]. Errors are reported at the point
// of the offending call and the model is left in its last valid state, so
// callers can recover locally:
//
//	sys, err := m.AddSoftwareSystem("Billing", "")
//	if errors.Is(err, errors.ErrCodeNameConflict) {
//	    sys = m.SoftwareSystem("Billing")
//	}
//
// # Error Codes
//
// Codes follow the same naming convention as the rest of the toolchain:
//   - NAME_CONFLICT, UNKNOWN_ELEMENT, NOT_DEPLOYABLE, DUPLICATE_VIEW_KEY:
//     the four model and view failures
//   - INVALID_*: input validation failures
//   - *_NOT_FOUND: missing files or definitions
//   - RENDER_FAILED, MISSING_TOOL: Graphviz or rsvg-convert failures
//   - INTERNAL_ERROR, INCONSISTENT_MODEL: unexpected internal state
//
// Wrap existing errors to keep their cause:
//
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Model and view errors
	ErrCodeNameConflict     Code = "NAME_CONFLICT"
	ErrCodeUnknownElement   Code = "UNKNOWN_ELEMENT"
	ErrCodeNotDeployable    Code = "NOT_DEPLOYABLE"
	ErrCodeDuplicateViewKey Code = "DUPLICATE_VIEW_KEY"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidParent Code = "INVALID_PARENT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidView   Code = "INVALID_VIEW"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeViewNotFound Code = "VIEW_NOT_FOUND"

	// Rendering and tooling errors
	ErrCodeRender      Code = "RENDER_FAILED"
	ErrCodeMissingTool Code = "MISSING_TOOL"

	// Internal errors
	ErrCodeInternal     Code = "INTERNAL_ERROR"
	ErrCodeInconsistent Code = "INCONSISTENT_MODEL"
	ErrCodeUnsupported  Code = "UNSUPPORTED"
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
// It unwraps the error chain and reports true if any *Error in the chain
// carries a matching code, so fmt.Errorf("...: %w", err) keeps the code visible.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
