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
	"fmt"

	"github.com/pkg/errors"
)

//--------------------
// FALLIBLE
//--------------------

// Fallible encapsulates either a value or a captured failure. The
// branch is set on construction and never changes. A nil failure
// means success, so the zero value is a success holding the zero T.
type Fallible[T any] struct {
	value   T
	failure Failure
}

// Succeed creates a successful result holding value. T may be a
// failure type too, it is stored as a plain value.
func Succeed[T any](value T) Fallible[T] {
	return Fallible[T]{
		value: value,
	}
}

// Fail creates a failed result owning a deep copy of f. A nil f or
// an ErrorFailure without error is a contract violation and panics.
func Fail[T any](f Failure) Fallible[T] {
	if isInvalid(f) {
		panic(errors.WithStack(NewError("Fail", fmt.Errorf("failure cannot be nil"), ErrInvalid)))
	}
	return Fallible[T]{
		failure: capture(f),
	}
}

// FailError creates a failed result from a Go error. A nil err is a
// contract violation and panics.
func FailError[T any](err error) Fallible[T] {
	if isNil(err) {
		panic(errors.WithStack(NewError("FailError", fmt.Errorf("error cannot be nil"), ErrInvalid)))
	}
	return Fallible[T]{
		failure: capture(ErrorFailure{err: err}),
	}
}

// Of creates a result from the usual value and error pair. A non-nil
// err wins and value is dropped.
func Of[T any](value T, err error) Fallible[T] {
	if err != nil {
		return FailError[T](err)
	}
	return Succeed(value)
}

// IsSuccess returns true if the result holds a value.
func (r Fallible[T]) IsSuccess() bool {
	return r.failure == nil
}

// Value returns the encapsulated value. Calling it on a failed result
// returns the zero value and a *ContractError with code ErrNoValue.
func (r Fallible[T]) Value() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, errors.WithStack(NewError("Value", fmt.Errorf("result failed: %s", r.failure.Message()), ErrNoValue))
	}
	return r.value, nil
}

// MustValue returns the encapsulated value or panics with the
// contract error of Value.
func (r Fallible[T]) MustValue() T {
	value, err := r.Value()
	if err != nil {
		panic(err)
	}
	return value
}

// FailureMessage returns the message of the captured failure and true.
// A successful result returns an empty message and false.
func (r Fallible[T]) FailureMessage() (string, bool) {
	if r.failure == nil {
		return "", false
	}
	return r.failure.Message(), true
}

// Failure returns a copy of the captured failure. Calling it on a
// successful result returns a *ContractError with code ErrNoFailure.
func (r Fallible[T]) Failure() (Failure, error) {
	if r.failure == nil {
		return nil, errors.WithStack(NewError("Failure", nil, ErrNoFailure))
	}
	return capture(r.failure), nil
}

// Clone returns an independent duplicate of the result.
func (r Fallible[T]) Clone() Fallible[T] {
	if r.failure == nil {
		return Succeed(r.value)
	}
	return Fallible[T]{
		failure: capture(r.failure),
	}
}

// FailureAs returns a copy of the captured failure if it is of type F.
// Failures created from errors are also searched along their error
// chain.
func FailureAs[F Failure, T any](r Fallible[T]) (F, bool) {
	if r.failure == nil {
		var zero F
		return zero, false
	}
	return asFailure[F](capture(r.failure))
}

// EOF
