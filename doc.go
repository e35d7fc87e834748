// Tideland Go Fallible
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

/*
Package fallible provides a generic container holding either a value or a captured
failure. The decision if an operation succeeded is taken when the container is built,
the consumer inspects it later. So values can be produced eagerly, e.g. in a batch or
behind a boundary that must not panic, and failures only surface when asked for.

# Building Results

The two branches have their own constructors. Nothing is decided by the type of the
argument, so T may be a failure type itself.

	ok := fallible.Succeed(42)
	bad := fallible.Fail[int](Overflow{Limit: 100})
	parsed := fallible.Of(strconv.Atoi(input))

A failure is anything with a Message() method. Go errors are adapted by FailError() or
Of(). On construction the failure is copied including its concrete type, the result
owns this deep copy exclusively. Failures can implement Cloner to control their
copying.

# Reading Results

	if r.IsSuccess() {
		v, _ := r.Value()
		...
	}
	if msg, ok := r.FailureMessage(); ok {
		...
	}

Asking a failed result for its value is a contract violation. Value() then returns
the zero value together with a *ContractError carrying the code ErrNoValue and a
stack trace, MustValue() panics with it. Failure() returns a fresh copy of the
captured failure, FailureAs() a copy of a specific concrete type.

# Capturing Panics

Try() and TryWith() run a function returning a value and an error. Panics are
recovered into a *PanicFailure and logged via github.com/apex/log.

	cfg := fallible.NewConfig("parse").SetLogger(logger)
	r := fallible.TryWith(cfg, func() (Record, error) {
		return parse(line)
	})

# Batches

Successes(), Messages(), Partition(), and AllSucceeded() inspect slices of results.
*/
package fallible // import "tideland.dev/go/fallible"

// EOF
