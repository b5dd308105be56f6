// Package errors provides structured error types for reckon.
//
// Every failure raised by the enumeration core carries a machine-readable
// [Code]. Callers fall into two groups:
//
//   - Search loops treat [ErrCodeDivideByZero] and rank-decode failures
//     ([WrapDecode]) as "this combination is not a solution" and continue
//     (see [Recoverable]). A plain [ErrCodeOutOfRange], such as a bad
//     subscript, is not recoverable.
//   - Everything else ([ErrCodeEqualPair], [ErrCodeRangeTooNarrow],
//     [ErrCodeNTooSmall], [ErrCodeUnrecognizedOperator], ...) is a construction
//     or programming defect and should abort the run.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfRange, "pair rank %d out of range for n=%d", r, n)
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // skip this evaluation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Enumeration core
	ErrCodeOutOfRange           Code = "OUT_OF_RANGE"
	ErrCodeEqualPair            Code = "EQUAL_PAIR"
	ErrCodeRangeTooNarrow       Code = "RANGE_TOO_NARROW"
	ErrCodeNTooSmall            Code = "N_TOO_SMALL"
	ErrCodeDivideByZero         Code = "DIVIDE_BY_ZERO"
	ErrCodeUnrecognizedOperator Code = "UNRECOGNIZED_OPERATOR"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)

	decode bool // set by WrapDecode
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

// WrapDecode wraps a failure to decode a rank at evaluation time. The result
// carries [ErrCodeOutOfRange] and is [Recoverable].
func WrapDecode(cause error, format string, args ...any) *Error {
	e := Wrap(ErrCodeOutOfRange, cause, format, args...)
	e.decode = true
	return e
}

// Is reports whether any *Error in err's chain carries the given code.
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

// Recoverable reports whether err is an expected per-evaluation failure
// that an exhaustive search should count and skip: a division by zero or a
// rank that does not decode. It looks at the outermost *Error in the chain.
func Recoverable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case ErrCodeDivideByZero:
		return true
	case ErrCodeOutOfRange:
		return e.decode
	}
	return false
}
