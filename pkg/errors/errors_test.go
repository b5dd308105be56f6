package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeOutOfRange, "pair rank %d out of range", 20)

	if err.Code != ErrCodeOutOfRange {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeOutOfRange)
	}

	if err.Message != "pair rank 20 out of range" {
		t.Errorf("Message = %v, want %v", err.Message, "pair rank 20 out of range")
	}

	expected := "OUT_OF_RANGE: pair rank 20 out of range"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidConfig, cause, "failed to decode")

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeEqualPair, "test"),
			code:     ErrCodeEqualPair,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeEqualPair, "test"),
			code:     ErrCodeOutOfRange,
			expected: false,
		},
		{
			name:     "outer code of wrapped error",
			err:      Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidConfig,
			expected: true,
		},
		{
			name:     "inner code of wrapped error",
			err:      Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("evaluate: %w", New(ErrCodeDivideByZero, "x / 0")),
			code:     ErrCodeDivideByZero,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeRangeTooNarrow, "test"),
			expected: ErrCodeRangeTooNarrow,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWrapDecode(t *testing.T) {
	cause := New(ErrCodeOutOfRange, "pair rank 5 out of range [0, 2)")
	err := WrapDecode(cause, "step %d", 2)
	if err.Code != ErrCodeOutOfRange {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeOutOfRange)
	}
	if !errors.Is(err, cause) {
		t.Error("WrapDecode should keep the cause")
	}
	if err.Message != "step 2" {
		t.Errorf("Message = %q, want %q", err.Message, "step 2")
	}
}

func TestRecoverable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeDivideByZero, "x"), true},
		{fmt.Errorf("step 2: %w", New(ErrCodeDivideByZero, "x")), true},
		{WrapDecode(New(ErrCodeOutOfRange, "pair rank 5"), "step 2"), true},
		{fmt.Errorf("search: %w", WrapDecode(nil, "step 2")), true},
		{New(ErrCodeOutOfRange, "subscript 9 out of range [0, 3)"), false},
		{fmt.Errorf("step 2: %w", New(ErrCodeOutOfRange, "x")), false},
		{New(ErrCodeEqualPair, "x"), false},
		{New(ErrCodeRangeTooNarrow, "x"), false},
		{New(ErrCodeNTooSmall, "x"), false},
		{New(ErrCodeUnrecognizedOperator, "x"), false},
		{errors.New("plain"), false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := Recoverable(tt.err); got != tt.want {
			t.Errorf("Recoverable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
