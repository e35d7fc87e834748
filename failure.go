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
	"reflect"

	"github.com/huandu/go-clone"
)

//--------------------
// FAILURE
//--------------------

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Failure is anything carrying a human-readable message. A result
// captures it on construction and keeps its concrete type.
type Failure interface {
	Message() string
}

// Cloner can be implemented by failures needing their own way of
// copying, e.g. to skip caches. CloneFailure has to return an
// independent copy. Without it a captured failure is deep copied.
type Cloner interface {
	CloneFailure() Failure
}

// messageFailure is the simplest failure, just a message.
type messageFailure struct {
	msg string
}

// NewFailure creates a failure with the given message.
func NewFailure(msg string) Failure {
	return messageFailure{msg: msg}
}

// Message implements Failure.
func (f messageFailure) Message() string {
	return f.msg
}

// ErrorFailure adapts a Go error into a Failure.
type ErrorFailure struct {
	err error
}

// Message implements Failure.
func (f ErrorFailure) Message() string {
	if f.err == nil {
		return ""
	}
	return f.err.Error()
}

// Unwrap returns the wrapped error.
func (f ErrorFailure) Unwrap() error {
	return f.err
}

// PanicFailure is captured when a function run by Try panics.
type PanicFailure struct {
	Label  string
	Reason any
}

// Message implements Failure.
func (f *PanicFailure) Message() string {
	msg := "panic: " + reasonText(f.Reason)
	if f.Label != "" {
		return f.Label + ": " + msg
	}
	return msg
}

//--------------------
// CAPTURING
//--------------------

// isNil checks for nil interfaces as well as typed nil pointers.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isInvalid checks for failures a result cannot hold, nil ones and
// adapters without an error.
func isInvalid(f Failure) bool {
	if isNil(f) {
		return true
	}
	if ef, ok := f.(ErrorFailure); ok {
		return isNil(ef.err)
	}
	return false
}

// capture creates the owned copy of f stored inside a result. It is
// a deep copy keeping the concrete type unless f implements Cloner.
func capture(f Failure) Failure {
	if c, ok := f.(Cloner); ok {
		if cf := c.CloneFailure(); !isNil(cf) {
			return cf
		}
	}
	if _, ok := f.(ErrorFailure); ok {
		// Errors keep their identity for errors.Is.
		return f
	}
	return clone.Clone(f).(Failure)
}

// asFailure matches f against the type F, directly or through the
// error chain of an adapted error.
func asFailure[F Failure](f Failure) (F, bool) {
	if typed, ok := f.(F); ok {
		return typed, true
	}
	var zero F
	ef, ok := f.(ErrorFailure)
	if !ok {
		return zero, false
	}
	// errors.As panics for targets neither interfaces nor errors.
	tt := reflect.TypeOf((*F)(nil)).Elem()
	if tt.Kind() != reflect.Interface && !tt.Implements(errorType) {
		return zero, false
	}
	var target F
	if errors.As(ef.err, &target) {
		return target, true
	}
	return zero, false
}

// EOF
