// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/cli/exit"
	"github.com/cockroachdb/oradate/pkg/util/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logger struct {
	TB       testing.TB
	Severity log.Severity
	Err      error
}

func (l *logger) Log(_ context.Context, sev log.Severity, msg string, args ...interface{}) {
	require.Equal(l.TB, 1, len(args), "expected to log one item")
	err, ok := args[0].(error)
	require.True(l.TB, ok, "expected to log an error")
	l.Severity = sev
	l.Err = err
}

func TestErrorReporting(t *testing.T) {
	tests := []struct {
		desc         string
		err          error
		wantSeverity log.Severity
		wantCLICause bool // should the cause be an *Error?
		wantCode     exit.Code
	}{
		{
			desc:         "plain",
			err:          errors.New("boom"),
			wantSeverity: log.Severity_ERROR,
			wantCLICause: false,
			wantCode:     exit.UnspecifiedError(),
		},
		{
			desc: "single cliError",
			err: NewErrorWithSeverity(
				errors.New("routine"),
				exit.InvalidDate(),
				log.Severity_INFO,
			),
			wantSeverity: log.Severity_INFO,
			wantCLICause: false,
			wantCode:     exit.InvalidDate(),
		},
		{
			desc: "double cliError",
			err: NewErrorWithSeverity(
				NewError(
					errors.New("serious"),
					exit.BadTemplate(),
				),
				exit.UnspecifiedError(),
				log.Severity_INFO,
			),
			wantSeverity: log.Severity_INFO, // should only unwrap one layer
			wantCLICause: true,
			wantCode:     exit.UnspecifiedError(),
		},
		{
			desc: "wrapped cliError",
			err: fmt.Errorf("some context: %w", NewError(
				errors.New("routine"),
				exit.UnsupportedTemplate(),
			)),
			wantSeverity: log.Severity_ERROR,
			wantCLICause: false,
			wantCode:     exit.UnsupportedTemplate(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := &logger{TB: t}
			checked := CheckAndMaybeLog(tt.err, got.Log)
			assert.Equal(t, tt.err, checked, "should return error unchanged")
			assert.Equal(t, tt.wantSeverity, got.Severity, "wrong severity log")
			gotCLI := errors.HasType(got.Err, (*Error)(nil))
			if tt.wantCLICause {
				assert.True(t, gotCLI, "logged cause should be *Error, got %T", got.Err)
			} else {
				assert.False(t, gotCLI, "logged cause shouldn't be *Error, got %T", got.Err)
			}
			assert.Equal(t, tt.wantCode, GetExitCode(tt.err))
		})
	}
	require.NoError(t, CheckAndMaybeLog(nil, nil))
}
