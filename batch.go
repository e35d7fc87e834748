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
	"github.com/samber/lo"
)

//--------------------
// BATCH
//--------------------

// Successes returns the values of all successful results in order.
func Successes[T any](rs []Fallible[T]) []T {
	return lo.FilterMap(rs, func(r Fallible[T], _ int) (T, bool) {
		return r.value, r.IsSuccess()
	})
}

// Messages returns the failure messages of all failed results in order.
func Messages[T any](rs []Fallible[T]) []string {
	return lo.FilterMap(rs, func(r Fallible[T], _ int) (string, bool) {
		return r.FailureMessage()
	})
}

// Partition splits the results into their values and copies of
// their failures.
func Partition[T any](rs []Fallible[T]) ([]T, []Failure) {
	failures := lo.FilterMap(rs, func(r Fallible[T], _ int) (Failure, bool) {
		f, err := r.Failure()
		return f, err == nil
	})
	return Successes(rs), failures
}

// AllSucceeded returns true if no result failed. It is true for an
// empty batch.
func AllSucceeded[T any](rs []Fallible[T]) bool {
	return lo.EveryBy(rs, func(r Fallible[T]) bool {
		return r.IsSuccess()
	})
}

// EOF
