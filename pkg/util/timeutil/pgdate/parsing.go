// Copyright 2018 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgdate

import (
	"time"

	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/oradate/pkg/util/timeutil"
)

// TimeEpoch is returned alongside parse errors.
var TimeEpoch = timeutil.Unix(0, 0)

// timestampLayouts are the ISO-ish spellings accepted for timestamp
// literals, tried in order. Inputs without an offset are interpreted in
// the location passed to ParseTimestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp converts an ISO 8601 style string into a timestamp.
// This is the fixed-layout parser used for literals that do not come with
// a user-supplied template.
func ParseTimestamp(loc *time.Location, s string) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return TimeEpoch, parseError("timestamp", s)
}

func parseError(kind string, s string) error {
	return pgerror.Newf(pgcode.InvalidDatetimeFormat, "could not parse %q as type %s", s, kind)
}
