// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-mempool.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrBackingAlloc    = errors.New("backing buffer allocation failed")
	ErrPoolClosed      = errors.New("pool is closed")
	ErrBlockTooSmall   = errors.New("payload does not fit in pool block")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeBackingAlloc
	ErrCodePoolClosed
	ErrCodeBlockTooSmall
	ErrCodeInternal
)

var codeSentinels = map[ErrorCode]error{
	ErrCodeInvalidArgument: ErrInvalidArgument,
	ErrCodeBackingAlloc:    ErrBackingAlloc,
	ErrCodePoolClosed:      ErrPoolClosed,
	ErrCodeBlockTooSmall:   ErrBlockTooSmall,
}

func (c ErrorCode) String() string {
	if s, ok := codeSentinels[c]; ok {
		return s.Error()
	}
	if c == ErrCodeOK {
		return "ok"
	}
	return "internal error"
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches the sentinel error associated with the error code.
func (e *Error) Is(target error) bool {
	s, ok := codeSentinels[e.Code]
	return ok && s == target
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

// WithCause attaches the underlying failure.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}
