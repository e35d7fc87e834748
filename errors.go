// Tideland Go Fallible
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package fallible

//--------------------
// IMPORTS
//--------------------

import (
	"errors"
	"fmt"
)

//--------------------
// ERROR TYPES
//--------------------

// ErrorCode defines the type of error that occurred.
type ErrorCode int

const (
	// ErrNone signals no error.
	ErrNone ErrorCode = iota
	// ErrNoValue signals reading a value from a failed result.
	ErrNoValue
	// ErrNoFailure signals reading a failure from a successful result.
	ErrNoFailure
	// ErrInvalid signals invalid parameters or state.
	ErrInvalid
	// ErrPanic signals that a panic occurred while producing a value.
	ErrPanic
)

// String implements the Stringer interface.
func (ec ErrorCode) String() string {
	switch ec {
	case ErrNone:
		return "no error"
	case ErrNoValue:
		return "no value"
	case ErrNoFailure:
		return "no failure"
	case ErrInvalid:
		return "invalid"
	case ErrPanic:
		return "panic"
	default:
		return "unknown error"
	}
}

// ContractError signals a contract violation, e.g. asking a failed
// result for its value. It is a programmer error, not a runtime
// condition to recover from.
type ContractError struct {
	Op   string
	Err  error
	Code ErrorCode
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fallible %s: %v (%v)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("fallible %s: %v", e.Op, e.Code)
}

// Unwrap implements error unwrapping.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// NewError creates a new contract error.
func NewError(op string, err error, code ErrorCode) *ContractError {
	return &ContractError{
		Op:   op,
		Err:  err,
		Code: code,
	}
}

// IsContractViolation returns true if err is or wraps a *ContractError.
func IsContractViolation(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

// CodeOf returns the code of the first *ContractError in the chain
// of err, or ErrNone.
func CodeOf(err error) ErrorCode {
	var ce *ContractError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrNone
}

// EOF
