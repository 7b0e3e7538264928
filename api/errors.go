// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-containers.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	// ErrInvalidArgument reports a nil handle, a zero size, or a
	// capacity computation that would overflow at creation time.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	// ErrResourceExhausted reports a write beyond free capacity or a
	// read beyond unread data.
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
	// ErrNotFound reports an out-of-range index, a comparator miss,
	// or an access through an exhausted iterator.
	ErrNotFound = fmt.Errorf("resource not found")
	// ErrIteratorsOpen reports an attempt to close a list while
	// iterators created on it are still open.
	ErrIteratorsOpen = fmt.Errorf("iterators still open")
	// ErrClosed reports an operation on a closed container.
	ErrClosed = fmt.Errorf("container is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeNotFound
	ErrCodeIteratorsOpen
	ErrCodeClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Unwrap maps the structured error back to its sentinel, so that
// errors.Is matching keeps working across the structured layer.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeResourceExhausted:
		return ErrResourceExhausted
	case ErrCodeNotFound:
		return ErrNotFound
	case ErrCodeIteratorsOpen:
		return ErrIteratorsOpen
	case ErrCodeClosed:
		return ErrClosed
	default:
		return nil
	}
}

// CodeOf classifies any library error, sentinel or structured.
func CodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrCodeOK
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrResourceExhausted):
		return ErrCodeResourceExhausted
	case errors.Is(err, ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, ErrIteratorsOpen):
		return ErrCodeIteratorsOpen
	case errors.Is(err, ErrClosed):
		return ErrCodeClosed
	default:
		return ErrCodeInternal
	}
}
