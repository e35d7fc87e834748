// Tideland Go Fallible - Unit Tests
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package fallible_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"tideland.dev/go/asserts/verify"

	"tideland.dev/go/fallible"
)

// memoryLogger returns a logger recording into the returned handler.
func memoryLogger() (*log.Logger, *memory.Handler) {
	h := memory.New()
	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

// TestTryValue verifies capturing a returned value.
func TestTryValue(t *testing.T) {
	r := fallible.Try(func() (int, error) {
		return strconv.Atoi("42")
	})

	verify.True(t, r.IsSuccess())
	verify.Equal(t, r.MustValue(), 42)
}

// TestTryError verifies capturing a returned error.
func TestTryError(t *testing.T) {
	r := fallible.Try(func() (int, error) {
		return strconv.Atoi("forty-two")
	})

	verify.True(t, !r.IsSuccess())
	var ne *strconv.NumError
	f, err := r.Failure()
	verify.NoError(t, err)
	verify.True(t, errors.As(f.(fallible.ErrorFailure).Unwrap(), &ne))
	verify.Equal(t, ne.Func, "Atoi")
}

// TestTryPanic verifies recovering and logging a panic.
func TestTryPanic(t *testing.T) {
	logger, h := memoryLogger()
	cfg := fallible.NewConfig("parse").SetLogger(logger)

	r := fallible.TryWith(cfg, func() (int, error) {
		panic("boom")
	})

	verify.True(t, !r.IsSuccess())
	msg, _ := r.FailureMessage()
	verify.Equal(t, msg, "parse: panic: boom")

	pf, ok := fallible.FailureAs[*fallible.PanicFailure](r)
	verify.True(t, ok)
	verify.Equal(t, pf.Label, "parse")
	verify.Equal(t, pf.Reason, any("boom"))

	verify.Equal(t, len(h.Entries), 1)
	entry := h.Entries[0]
	verify.Equal(t, entry.Level, log.WarnLevel)
	verify.Equal(t, entry.Message, "recovered panic")
	verify.Equal(t, entry.Fields["label"], any("parse"))
	verify.Equal(t, entry.Fields["reason"], any("boom"))
	verify.Equal(t, entry.Fields["error"], any("fallible TryWith: boom (panic)"))
}

// TestTryPanicFailure verifies that a failure used as panic reason
// is captured directly.
func TestTryPanicFailure(t *testing.T) {
	logger, _ := memoryLogger()
	cfg := fallible.DefaultConfig().SetLogger(logger)

	r := fallible.TryWith(cfg, func() (string, error) {
		panic(Overflow{Text: "too big"})
	})

	msg, _ := r.FailureMessage()
	verify.Equal(t, msg, "too big")
	_, ok := fallible.FailureAs[Overflow](r)
	verify.True(t, ok)
}

// TestTryPanicError verifies the message of a panic with an error.
func TestTryPanicError(t *testing.T) {
	logger, _ := memoryLogger()
	cfg := fallible.DefaultConfig().SetLogger(logger)

	r := fallible.TryWith(cfg, func() (string, error) {
		panic(errors.New("ouch"))
	})

	msg, _ := r.FailureMessage()
	verify.Equal(t, msg, "panic: ouch")
}

// nilReasonError panics when called on a nil receiver.
type nilReasonError struct {
	text string
}

func (e *nilReasonError) Error() string {
	return e.text
}

func (e *nilReasonError) Message() string {
	return e.text
}

// TestTryPanicTypedNil verifies that typed nil panic reasons are
// captured without a second panic.
func TestTryPanicTypedNil(t *testing.T) {
	logger, h := memoryLogger()
	cfg := fallible.DefaultConfig().SetLogger(logger)

	r := fallible.TryWith(cfg, func() (int, error) {
		panic((*nilReasonError)(nil))
	})

	verify.True(t, !r.IsSuccess())
	msg, ok := r.FailureMessage()
	verify.True(t, ok)
	verify.Equal(t, msg, "panic: <nil>")
	verify.Equal(t, len(h.Entries), 1)

	r = fallible.TryWith(cfg, func() (int, error) {
		panic(fallible.ErrorFailure{})
	})
	msg, _ = r.FailureMessage()
	verify.Equal(t, msg, "panic: {<nil>}")
}

// TestTryNoRecover verifies that panics pass if recovering is disabled.
func TestTryNoRecover(t *testing.T) {
	logger, h := memoryLogger()
	cfg := fallible.DefaultConfig().SetLogger(logger).SetRecoverPanics(false)

	defer func() {
		verify.Equal(t, recover(), any("boom"))
		verify.Equal(t, len(h.Entries), 0)
	}()

	fallible.TryWith(cfg, func() (int, error) {
		panic("boom")
	})
	t.Fatal("panic has been recovered")
}

// TestTryInvalid verifies invalid arguments lead to failures.
func TestTryInvalid(t *testing.T) {
	called := false
	fn := func() (int, error) {
		called = true
		return 1, nil
	}

	r := fallible.TryWith(fallible.NewConfig("two\nlines"), fn)
	verify.True(t, !r.IsSuccess())
	verify.True(t, !called)
	f, err := r.Failure()
	verify.NoError(t, err)
	verify.Equal(t, fallible.CodeOf(f.(fallible.ErrorFailure).Unwrap()), fallible.ErrInvalid)

	r = fallible.TryWith(nil, fn)
	msg, _ := r.FailureMessage()
	verify.ErrorMatch(t, errors.New(msg), ".*config cannot be nil.*")

	r = fallible.Try[int](nil)
	msg, _ = r.FailureMessage()
	verify.ErrorMatch(t, errors.New(msg), ".*function cannot be nil.*")
	verify.True(t, !called)
}

// TestConfig verifies configuration getters and validation.
func TestConfig(t *testing.T) {
	cfg := fallible.DefaultConfig()
	verify.NoError(t, cfg.Validate())
	verify.Equal(t, cfg.Label(), "")
	verify.True(t, cfg.RecoverPanics())
	verify.NotNil(t, cfg.Logger())

	logger, _ := memoryLogger()
	cfg = fallible.NewConfig("import").SetLogger(logger).SetRecoverPanics(false)
	verify.NoError(t, cfg.Validate())
	verify.Equal(t, cfg.Label(), "import")
	verify.True(t, !cfg.RecoverPanics())

	cfg = fallible.NewConfig("a\nb").SetLogger(nil)
	verify.ErrorMatch(t, cfg.Validate(), "(?s)label must be a single line.*logger cannot be nil")
}

// EOF
