// Package errors defines the stable error code system for codexspec.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Project discovery
	ENoProjectName Code = "E_NO_PROJECT_NAME"
	EDirExists     Code = "E_DIR_EXISTS"
	ENoProject     Code = "E_NO_PROJECT"

	// Config editing
	ELanguageSectionMissing Code = "E_LANGUAGE_SECTION_MISSING"
	EConfigInvalid          Code = "E_CONFIG_INVALID"

	// I/O boundary
	EReadFailed   Code = "E_READ_FAILED"
	EWriteFailed  Code = "E_WRITE_FAILED"
	EPromptFailed Code = "E_PROMPT_FAILED"

	// External tools
	EGitFailed Code = "E_GIT_FAILED"
)

// Error is the standard error type for codexspec errors.
type Error struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// NewWithDetails creates a new Error with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &Error{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new Error wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &Error{Code: code, Msg: msg, Cause: err}
}

// GetCode extracts the error code from an error, or empty string if not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// AsError returns (*Error, true) if err is or wraps an *Error.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the process exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes err to w as a short status line followed by the error code:
//
//	Error: <message>
//	error_code: <CODE>
//	hint: <hint>          (only when Details["hint"] is set)
//
// style decorates the "Error:" label; pass nil for plain output.
func Print(w io.Writer, err error, style func(string) string) {
	if err == nil {
		return
	}
	if style == nil {
		style = func(s string) string { return s }
	}
	e, ok := AsError(err)
	if !ok {
		fmt.Fprintf(w, "%s %s\n", style("Error:"), err.Error())
		return
	}
	fmt.Fprintf(w, "%s %s\n", style("Error:"), e.Msg)
	fmt.Fprintf(w, "error_code: %s\n", e.Code)
	if hint := e.Details["hint"]; hint != "" {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
