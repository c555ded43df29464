// Package errors provides unified error handling with structured error codes.
package errors

import "fmt"

// Code classifies an error for callers that branch on failure kind.
type Code int

const (
	CodeUnknown Code = iota
	CodeInternal
	// CodeInvalidArgument marks bad caller input, e.g. a capture region
	// with non-positive dimensions.
	CodeInvalidArgument
	CodeNotFound
	// CodeUnavailable marks transient conditions worth retrying.
	CodeUnavailable
	// CodeResourceAcquire marks a failed OS resource acquisition (device
	// context, bitmap, select). The failing stage is in Metadata["stage"].
	CodeResourceAcquire
	// CodeCaptureFailed marks a failed blit, render, or pixel readback.
	CodeCaptureFailed
	// CodeProcessQuery marks a failure to open or introspect the process
	// owning a window.
	CodeProcessQuery
)

var codeNames = map[Code]string{
	CodeUnknown:         "UNKNOWN",
	CodeInternal:        "INTERNAL",
	CodeInvalidArgument: "INVALID_ARGUMENT",
	CodeNotFound:        "NOT_FOUND",
	CodeUnavailable:     "UNAVAILABLE",
	CodeResourceAcquire: "RESOURCE_ACQUIRE",
	CodeCaptureFailed:   "CAPTURE_FAILED",
	CodeProcessQuery:    "PROCESS_QUERY",
}

// String returns the symbolic name of the code.
func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "UNKNOWN"
}

// AppError is the base error type with structured error code and metadata.
type AppError struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
	if len(e.Metadata) > 0 {
		s += fmt.Sprintf(" %v", e.Metadata)
	}
	if e.Cause != nil {
		s += fmt.Sprintf(" caused by: %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates a new AppError with the given code and message.
func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// Newf creates a new AppError with formatted message.
func Newf(code Code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError.
func Wrap(err error, code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg, Cause: err}
}

// Wrapf wraps an existing error with formatted message.
func Wrapf(err error, code Code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// WithMetadata adds metadata to an AppError.
func (e *AppError) WithMetadata(key, value string) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// WithStage tags the error with the OS resource stage that failed.
func (e *AppError) WithStage(stage string) *AppError {
	return e.WithMetadata("stage", stage)
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code Code) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the error's code, or CodeUnknown for foreign errors.
func CodeOf(err error) Code {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// Stage returns the failing resource stage recorded on the error, if any.
func Stage(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Metadata["stage"]
	}
	return ""
}

// IsRetryable returns true if the error is potentially retryable.
func IsRetryable(err error) bool {
	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}
	switch appErr.Code {
	case CodeUnavailable, CodeCaptureFailed:
		return true
	default:
		return false
	}
}
