// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgerror

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgcode"
	"github.com/lib/pq"
)

// InternalErrorPrefix is prepended on internal errors.
const InternalErrorPrefix = "internal error: "

// Flatten turns any error into a client-visible pq.Error with fields
// populated. Returns a nil ptr if err was nil to start with.
func Flatten(err error) *pq.Error {
	if err == nil {
		return nil
	}
	resErr := &pq.Error{
		Severity: "ERROR",
		Code:     pq.ErrorCode(GetPGCode(err).String()),
		Message:  err.Error(),
		Detail:   errors.FlattenDetails(err),
		Hint:     errors.FlattenHints(err),
	}
	if pos, ok := GetPosition(err); ok {
		resErr.Position = strconv.Itoa(pos + 1)
	}
	if file, line, fn, ok := errors.GetOneLineSource(err); ok {
		resErr.File = file
		resErr.Line = strconv.Itoa(line)
		resErr.Routine = fn
	}

	if resErr.Code == pq.ErrorCode(pgcode.Internal.String()) {
		if !strings.HasPrefix(resErr.Message, InternalErrorPrefix) {
			resErr.Message = InternalErrorPrefix + resErr.Message
		}
	}
	return resErr
}

// formatMsgHintDetail renders a message with its hint and detail, one
// field per line, the way the SQL shell does.
func formatMsgHintDetail(prefix, msg, hint, detail string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(": ")
	b.WriteString(msg)
	if detail != "" {
		b.WriteString("\nDETAIL: ")
		b.WriteString(detail)
	}
	if hint != "" {
		b.WriteString("\nHINT: ")
		b.WriteString(hint)
	}
	return b.String()
}

// FullError can be used when the hint and/or detail are to be tested.
func FullError(err error) string {
	if s, ok := fullErrorFromPQ(err); ok {
		return s
	}
	flat := Flatten(err)
	var b strings.Builder
	b.WriteString(formatMsgHintDetail(flat.Severity, flat.Message, flat.Hint, flat.Detail))
	fmt.Fprintf(&b, "\nSQLSTATE: %s", flat.Code)
	if flat.Position != "" {
		fmt.Fprintf(&b, "\nPOSITION: %s", flat.Position)
	}
	return b.String()
}
