// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package clierror attaches process exit codes and log severities to
// errors returned by CLI commands.
package clierror

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/cli/exit"
	"github.com/cockroachdb/oradate/pkg/util/log"
)

// Error wraps an error with the exit code the process should terminate
// with and the severity it should be logged at.
type Error struct {
	exitCode exit.Code
	severity log.Severity
	cause    error
}

// NewError instantiates a new Error.
func NewError(cause error, exitCode exit.Code) error {
	return &Error{
		exitCode: exitCode,
		severity: log.Severity_ERROR,
		cause:    cause,
	}
}

// NewErrorWithSeverity instantiates a new Error with a log severity.
func NewErrorWithSeverity(cause error, exitCode exit.Code, severity log.Severity) error {
	return &Error{
		exitCode: exitCode,
		severity: severity,
		cause:    cause,
	}
}

// GetExitCode returns the exit code to use for err, or
// exit.UnspecifiedError() when err does not carry one.
func GetExitCode(err error) exit.Code {
	if ce := (*Error)(nil); errors.As(err, &ce) {
		return ce.exitCode
	}
	return exit.UnspecifiedError()
}

// Error implements the error interface.
func (e *Error) Error() string { return e.cause.Error() }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the Go 1.13 unwrapping interface.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// FormatError implements errors.Formatter.
func (e *Error) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("error with exit code: %d", e.exitCode)
	}
	return e.cause
}

// CheckAndMaybeLog reports the error at the severity of the outermost
// Error it carries, ERROR otherwise. The error is returned unchanged.
func CheckAndMaybeLog(
	err error, logger func(context.Context, log.Severity, string, ...interface{}),
) error {
	if err == nil {
		return nil
	}
	severity := log.Severity_ERROR
	cause := err
	var ec *Error
	if errors.As(err, &ec) {
		severity = ec.severity
		cause = ec.cause
	}
	logger(context.Background(), severity, "%v", cause)
	return err
}
