// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

// Codes that are common to all commands follow.

// Success (0) represents a normal process termination.
func Success() Code { return Code{0} }

// UnspecifiedError (1) indicates the process has terminated with an
// error condition. The specific cause of the error can be found in
// the logging output.
func UnspecifiedError() Code { return Code{1} }

// UnspecifiedGoPanic (2) indicates the process has terminated due to
// an uncaught Go panic or some other error in the Go runtime.
//
// The reporting of this exit code likely indicates a programming
// error.
func UnspecifiedGoPanic() Code { return Code{2} }

// CommandLineFlagError (4) indicates there was an error in the
// command-line parameters.
func CommandLineFlagError() Code { return Code{4} }

// Codes that are specific to the date commands follow. They are
// allocated down from 125.

// BadTemplate (125) indicates that a template could not be compiled:
// it is malformed or uses conflicting directives.
func BadTemplate() Code { return Code{125} }

// UnsupportedTemplate (124) indicates that a template uses a directive
// that is recognized but not supported.
func UnsupportedTemplate() Code { return Code{124} }

// InvalidDate (123) indicates that an input did not match its template.
func InvalidDate() Code { return Code{123} }
