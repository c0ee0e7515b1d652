package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidCode indicates an integer code outside the known range.
	ErrInvalidCode = errors.New("invalid code")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// InvalidCodeError reports an integer code that does not correspond to any
// member of the case, pattern, or boundary tables.
type InvalidCodeError struct {
	// Argument names the parameter that carried the code (e.g. "targetCase")
	Argument string
	// Kind is the table the code was looked up in: "case", "pattern" or "boundary"
	Kind string
	// Code is the value as received; it may be a non-integral number
	Code any
	// Max is the largest valid code for Kind (valid codes are 0..Max)
	Max int
}

// Error returns a human-readable error message.
func (e *InvalidCodeError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "enum"
	}
	msg := fmt.Sprintf("invalid %s code %v", kind, e.Code)
	if e.Argument != "" {
		msg += fmt.Sprintf(" for argument %q", e.Argument)
	}
	if e.Max > 0 {
		msg += fmt.Sprintf(": valid codes are 0-%d", e.Max)
	}
	return msg
}

// Unwrap returns nil as InvalidCodeError has no underlying cause.
func (e *InvalidCodeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InvalidCodeError) Is(target error) bool {
	return target == ErrInvalidCode
}

// ConfigError represents an invalid configuration or input.
// This includes unknown case names, bad flag values, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError represents an input that exceeds a configured limit.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "input_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
