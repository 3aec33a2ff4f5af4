// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"fmt"
	stdLog "log"
	"strconv"

	"github.com/cockroachdb/redact"
)

// copyStandardLogTo arranges for messages written to the Go "log"
// package's default logger to appear in these logs with the given
// severity. Later changes to the standard logger's output or flags break
// the bridge.
func copyStandardLogTo(severityName string) {
	sev, ok := SeverityByName(severityName)
	if !ok {
		panic(fmt.Sprintf("copyStandardLogTo(%q): unrecognized Severity name", severityName))
	}
	// The bridge expects "d.go:23: message".
	stdLog.SetFlags(stdLog.Lshortfile)
	stdLog.SetPrefix("")
	stdLog.SetOutput(logBridge(sev))
}

func init() {
	copyStandardLogTo("INFO")
}

// logBridge provides the Write method that connects Go's standard
// logger to the logs provided by this package.
type logBridge Severity

// Write parses the standard logging line and passes its components to the
// logger for Severity(lb).
func (lb logBridge) Write(b []byte) (n int, err error) {
	entry := logEntry{
		sev:  Severity(lb),
		time: nowFn(),
	}
	// Split "d.go:23: message" into "d.go", "23", and "message".
	if parts := bytes.SplitN(b, []byte{':'}, 3); len(parts) != 3 || len(parts[0]) < 1 || len(parts[2]) < 1 {
		entry.payload = redact.Sprintf("bad log format: %s", b)
	} else {
		// The "(gostd)" prefix points these lines at the caller of the
		// standard logger rather than at this package.
		entry.file = "(gostd) " + string(parts[0])
		lineno, err := strconv.ParseInt(string(parts[1]), 10, 64)
		if err != nil {
			entry.payload = redact.Sprintf("bad line number: %s", b)
			lineno = 1
		} else {
			payload := bytes.TrimSuffix(bytes.TrimPrefix(parts[2], []byte{' '}), []byte{'\n'})
			entry.payload = redact.Sprintf("%s", payload)
		}
		entry.line = int(lineno)
	}
	logging.outputLogEntry(entry)
	return len(b), nil
}
