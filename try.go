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

	"github.com/apex/log"
	"github.com/pkg/errors"
)

//--------------------
// TRY
//--------------------

// Try runs fn and captures its outcome. A returned error or a panic
// inside fn lead to a failed result, so Try itself never panics.
func Try[T any](fn func() (T, error)) Fallible[T] {
	return TryWith(DefaultConfig(), fn)
}

// TryWith works like Try using the given configuration. An invalid
// configuration leads to a failed result containing the validation
// error without running fn.
func TryWith[T any](cfg *Config, fn func() (T, error)) (result Fallible[T]) {
	if cfg == nil {
		return FailError[T](errors.WithStack(NewError("TryWith", fmt.Errorf("config cannot be nil"), ErrInvalid)))
	}
	if err := cfg.Validate(); err != nil {
		return FailError[T](errors.WithStack(NewError("TryWith", err, ErrInvalid)))
	}
	if fn == nil {
		return FailError[T](errors.WithStack(NewError("TryWith", fmt.Errorf("function cannot be nil"), ErrInvalid)))
	}
	if cfg.RecoverPanics() {
		defer func() {
			if reason := recover(); reason != nil {
				perr := NewError("TryWith", fmt.Errorf("%s", reasonText(reason)), ErrPanic)
				cfg.Logger().WithFields(log.Fields{
					"label":  cfg.Label(),
					"reason": reasonText(reason),
				}).WithError(perr).Warn("recovered panic")
				result = fromPanic[T](cfg.Label(), reason)
			}
		}()
	}
	value, err := fn()
	return Of(value, err)
}

// fromPanic turns a recovered panic reason into a failed result.
func fromPanic[T any](label string, reason any) Fallible[T] {
	if f, ok := reason.(Failure); ok && !isInvalid(f) {
		return Fail[T](f)
	}
	return Fail[T](&PanicFailure{
		Label:  label,
		Reason: reason,
	})
}

// reasonText renders a panic reason. fmt copes with nil receivers
// and panicking Error or String methods.
func reasonText(reason any) string {
	return fmt.Sprint(reason)
}

// EOF
