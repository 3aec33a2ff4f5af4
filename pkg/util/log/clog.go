// Copyright 2013 Google Inc. All Rights Reserved.
// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small leveled logger with a ctx-first API. Every entry
// carries the logging tags found in the context (see logtags) and the
// arguments are rendered through the redact package so that unsafe values
// can be told apart from safe ones.
package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/redact"
)

// Severity is the severity of a log entry.
type Severity int32

// Severity levels, in increasing order of importance.
const (
	Severity_UNKNOWN Severity = iota
	Severity_INFO
	Severity_WARNING
	Severity_ERROR
	Severity_FATAL
)

var severityNames = [...]string{
	Severity_UNKNOWN: "UNKNOWN",
	Severity_INFO:    "INFO",
	Severity_WARNING: "WARNING",
	Severity_ERROR:   "ERROR",
	Severity_FATAL:   "FATAL",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return fmt.Sprintf("Severity(%d)", int32(s))
	}
	return severityNames[s]
}

// SeverityByName attempts to parse the passed in string into a severity.
func SeverityByName(s string) (Severity, bool) {
	for i, name := range severityNames {
		if name == s {
			return Severity(i), true
		}
	}
	return Severity_UNKNOWN, false
}

// loggerT is the process-wide sink. Entries are serialized to the output
// one at a time.
type loggerT struct {
	verbosity  atomic.Int32
	redactable atomic.Bool

	mu struct {
		sync.Mutex
		out   io.Writer
		color *colorProfile

		exitOverride struct {
			f func(int)
		}
	}
}

var logging = func() *loggerT {
	l := &loggerT{}
	l.mu.out = OrigStderr
	l.mu.color = stderrColorProfile
	return l
}()

// nowFn is overridden in tests.
var nowFn = func() time.Time { return time.Now().UTC() }

// OrigStderr points to the original stderr stream.
var OrigStderr = os.Stderr

// SetOutput redirects the log entries to w and returns a function that
// restores the previous destination. Colors are disabled for anything
// but the original stderr.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prevOut, prevColor := logging.mu.out, logging.mu.color
	logging.mu.out = w
	if w != OrigStderr {
		logging.mu.color = nil
	}
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out, logging.mu.color = prevOut, prevColor
	}
}

// SetVerbosity sets the global verbosity level used by V and VEventf.
func SetVerbosity(level int32) {
	logging.verbosity.Store(level)
}

// SetRedactable controls whether redaction markers are kept in the output.
func SetRedactable(redactable bool) {
	logging.redactable.Store(redactable)
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_INFO, 1, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_WARNING, 1, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_ERROR, 1, format, args)
}

// Fatalf logs to the FATAL severity and then terminates the process,
// or calls the function installed with SetExitFunc.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_FATAL, 1, format, args)
	logging.exit(1)
}

// VEventf logs an INFO entry if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		addStructured(ctx, Severity_INFO, 1, format, args)
	}
}

// Logf logs to the given severity. FATAL entries do not terminate the
// process.
func Logf(ctx context.Context, sev Severity, format string, args ...interface{}) {
	addStructured(ctx, sev, 1, format, args)
}

// logEntry is a single formatted log line before serialization.
type logEntry struct {
	sev     Severity
	time    time.Time
	file    string
	line    int
	tags    string
	payload redact.RedactableString
}

func makeEntry(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) logEntry {
	entry := logEntry{
		sev:  sev,
		time: nowFn(),
	}
	if _, file, line, ok := runtime.Caller(depth + 1); ok {
		entry.file, entry.line = filepath.Base(file), line
	}
	entry.tags = formatTags(ctx)
	entry.payload = renderArgs(format, args)
	return entry
}

func renderArgs(format string, args []interface{}) redact.RedactableString {
	if len(args) == 0 {
		return redact.Sprint(redact.SafeString(format))
	}
	return redact.Sprintf(format, args...)
}

// outputLogEntry writes the entry in the crdb-v1 layout:
//
//	I231102 14:05:09.000123 [tag1,tag2] file.go:12  message
func (l *loggerT) outputLogEntry(entry logEntry) {
	var buf bytes.Buffer
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := l.mu.color
	if cp != nil {
		buf.Write(cp.prefixFor(entry.sev))
	}
	buf.WriteByte(entry.sev.String()[0])
	buf.WriteString(entry.time.Format("060102 15:04:05.000000"))
	if cp != nil {
		buf.Write(colorReset)
	}
	buf.WriteByte(' ')
	if entry.tags != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.tags)
		buf.WriteString("] ")
	}
	if entry.file != "" {
		fmt.Fprintf(&buf, "%s:%d  ", entry.file, entry.line)
	}
	if l.redactable.Load() {
		buf.WriteString(string(entry.payload))
	} else {
		buf.WriteString(entry.payload.StripMarkers())
	}
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	_, _ = l.mu.out.Write(buf.Bytes())
}
