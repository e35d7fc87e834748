// Tideland Go Fallible
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package fallible

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
)

// Config configures TryWith using fluent builder pattern.
// All fields are private and accessed via getters. Validation errors are
// accumulated and can be checked before running anything.
type Config struct {
	// Configuration fields
	label         string
	logger        log.Interface
	recoverPanics bool

	// Error accumulation
	err error
}

// NewConfig creates a new configuration with the given label. The
// label prefixes messages of recovered panics. All other fields are
// set to sensible defaults.
func NewConfig(label string) *Config {
	c := &Config{
		logger:        log.Log,
		recoverPanics: true,
	}
	return c.SetLabel(label)
}

// DefaultConfig creates a configuration with all default values.
func DefaultConfig() *Config {
	return NewConfig("")
}

// SetLabel sets the label naming the guarded operation.
// It must be a single line.
func (c *Config) SetLabel(label string) *Config {
	if strings.ContainsAny(label, "\r\n") {
		c.wrapError(fmt.Errorf("label must be a single line, got %q", label))
		return c
	}
	c.label = label
	return c
}

// SetLogger sets the logger recovered panics are reported to.
func (c *Config) SetLogger(logger log.Interface) *Config {
	if logger == nil {
		c.wrapError(fmt.Errorf("logger cannot be nil"))
		return c
	}
	c.logger = logger
	return c
}

// SetRecoverPanics defines if panics are captured as failures. If
// not they pass through unchanged.
func (c *Config) SetRecoverPanics(recoverPanics bool) *Config {
	c.recoverPanics = recoverPanics
	return c
}

// Getters

// Label returns the configured label.
func (c *Config) Label() string {
	return c.label
}

// Logger returns the configured logger.
func (c *Config) Logger() log.Interface {
	return c.logger
}

// RecoverPanics returns if panics are captured.
func (c *Config) RecoverPanics() bool {
	return c.recoverPanics
}

// Error accumulation

// wrapError adds an error to the accumulated errors.
func (c *Config) wrapError(err error) {
	if c.err == nil {
		c.err = err
	} else {
		c.err = errors.Join(c.err, err)
	}
}

// Validate returns any accumulated validation errors.
// This is called automatically by TryWith(), but can be called earlier to check.
func (c *Config) Validate() error {
	return c.err
}

// EOF
