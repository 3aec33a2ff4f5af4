// Copyright 2013 Google Inc. All Rights Reserved.
// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	stdLog "log"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	prevNow := nowFn
	nowFn = func() time.Time { return time.Date(2023, 11, 2, 14, 5, 9, 123000, time.UTC) }
	t.Cleanup(func() {
		restore()
		nowFn = prevNow
		SetVerbosity(0)
		SetRedactable(false)
	})
	return &buf
}

func TestInfofLayout(t *testing.T) {
	buf := captureOutput(t)
	ctx := logtags.AddTag(context.Background(), "cmd", "parse")
	ctx = logtags.AddTag(ctx, "n", 1)
	Infof(ctx, "hello %s", "world")

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "I231102 14:05:09.000123 [cmd=parse,n1] clog_test.go:"), out)
	require.True(t, strings.HasSuffix(out, "  hello world\n"), out)
}

func TestSeverityLetters(t *testing.T) {
	buf := captureOutput(t)
	ctx := context.Background()
	Warningf(ctx, "w")
	Errorf(ctx, "e")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, byte('W'), lines[0][0])
	require.Equal(t, byte('E'), lines[1][0])
}

func TestVerbosity(t *testing.T) {
	buf := captureOutput(t)
	ctx := context.Background()
	VEventf(ctx, 2, "hidden")
	require.Empty(t, buf.String())
	require.False(t, V(1))

	SetVerbosity(2)
	require.True(t, V(1))
	VEventf(ctx, 2, "shown")
	require.Contains(t, buf.String(), "shown")
}

func TestRedactable(t *testing.T) {
	buf := captureOutput(t)
	ctx := context.Background()
	Infof(ctx, "template %s safe %s", "YYYY", redact.Safe("DD"))
	require.Contains(t, buf.String(), "template YYYY safe DD")

	buf.Reset()
	SetRedactable(true)
	Infof(ctx, "template %s safe %s", "YYYY", redact.Safe("DD"))
	require.Contains(t, buf.String(), "template ‹YYYY› safe DD")
}

func TestFatalfUsesExitFunc(t *testing.T) {
	buf := captureOutput(t)
	var code int
	SetExitFunc(func(c int) { code = c })
	defer ResetExitFunc()
	Fatalf(context.Background(), "boom")
	require.Equal(t, 1, code)
	require.Equal(t, byte('F'), buf.Bytes()[0])
}

func TestFormatWithContextTags(t *testing.T) {
	ctx := logtags.AddTag(context.Background(), "tz", "UTC")
	require.Equal(t, "[tz=UTC] x=1", FormatWithContextTags(ctx, "x=%d", 1))
	require.Equal(t, "x=1", FormatWithContextTags(context.Background(), "x=%d", 1))
}

func TestStdLogBridge(t *testing.T) {
	buf := captureOutput(t)
	stdLog.Print("from stdlib")
	out := buf.String()
	require.Equal(t, byte('I'), out[0])
	require.Contains(t, out, "(gostd) clog_test.go:")
	require.Contains(t, out, "from stdlib\n")

	copyStandardLogTo("WARNING")
	defer copyStandardLogTo("INFO")
	buf.Reset()
	stdLog.Printf("warned %d", 1)
	require.Equal(t, byte('W'), buf.Bytes()[0])
	require.Contains(t, buf.String(), "warned 1\n")

	require.Panics(t, func() { copyStandardLogTo("LOUD") })
}

func TestEveryN(t *testing.T) {
	captureOutput(t)
	e := Every(time.Hour)
	start := time.Now()
	require.True(t, e.shouldLog(start))
	require.False(t, e.shouldLog(start.Add(time.Minute)))
	SetVerbosity(2)
	require.True(t, e.shouldLog(start.Add(time.Minute)))
}

func TestSeverityByName(t *testing.T) {
	s, ok := SeverityByName("WARNING")
	require.True(t, ok)
	require.Equal(t, Severity_WARNING, s)
	_, ok = SeverityByName("LOUD")
	require.False(t, ok)
	require.Equal(t, "Severity(9)", Severity(9).String())
}

func TestColorProfileForTerm(t *testing.T) {
	require.Equal(t, colorProfile256, colorProfileForTerm("xterm-256color"))
	require.Equal(t, colorProfile8, colorProfileForTerm("screen"))
	require.Nil(t, colorProfileForTerm("dumb"))
}
