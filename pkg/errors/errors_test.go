package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(ErrCodeSourceUnavailable, cause, "open %s", "amazon-meta.txt")

	if err.Code != ErrCodeSourceUnavailable {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSourceUnavailable)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}

	expected := "SOURCE_UNAVAILABLE: open amazon-meta.txt: file does not exist"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
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
			err:      New(ErrCodeLineDecode, "test"),
			code:     ErrCodeLineDecode,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeLineDecode, "test"),
			code:     ErrCodeSourceUnavailable,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeSourceUnavailable, New(ErrCodeInvalidPath, "inner"), "outer"),
			code:     ErrCodeSourceUnavailable,
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
			err:      New(ErrCodeInvalidConfig, "test"),
			expected: ErrCodeInvalidConfig,
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
			name:     "wrapped cause",
			err:      Wrap(ErrCodeSourceUnavailable, errors.New("permission denied"), "open data.txt"),
			expected: "open data.txt: permission denied",
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

func TestLineError(t *testing.T) {
	cause := errors.New("invalid UTF-8")
	err := &LineError{Line: 42, Err: cause}

	if err.Error() != "line 42: invalid UTF-8" {
		t.Errorf("Error() = %v, want %v", err.Error(), "line 42: invalid UTF-8")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Code() != ErrCodeLineDecode {
		t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeLineDecode)
	}

	wrapped := Wrap(ErrCodeLineDecode, err, "read input")
	var le *LineError
	if !errors.As(wrapped, &le) || le.Line != 42 {
		t.Errorf("errors.As(wrapped, *LineError) did not recover line 42")
	}
}
