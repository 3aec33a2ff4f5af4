// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

import (
	"regexp"
	"strconv"
	"time"
)

// offsetZoneRe matches UTC/GMT offsets such as "GMT+3", "utc-05:30" and
// "UTC+10:00:15". Seconds are only accepted after minutes.
var offsetZoneRe = regexp.MustCompile(
	`(?i)^(?:GMT|UTC)([+-])(\d{1,2})(?::([0-5]\d)(?::([0-5]\d))?)?$`)

// TimeZoneStringToLocation transforms a string into a time.Location. It
// accepts IANA names as well as GMT/UTC offsets, which become fixed zones
// named after the offset as written.
func TimeZoneStringToLocation(location string) (*time.Location, error) {
	if secs, ok := TimeZoneOffsetStringConversion(location); ok {
		return time.FixedZone(location, int(secs)), nil
	}
	return LoadLocation(location)
}

// TimeZoneOffsetStringConversion converts a GMT/UTC offset to seconds east
// of UTC. Offsets with minutes go up to 15:59:59, bare hours up to 16.
func TimeZoneOffsetStringConversion(s string) (offset int64, ok bool) {
	m := offsetZoneRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.ParseInt(m[2], 10, 64)
	maxHours := int64(15)
	if m[3] == "" {
		maxHours = 16
	}
	if hours > maxHours {
		return 0, false
	}
	var minutes, seconds int64
	if m[3] != "" {
		minutes, _ = strconv.ParseInt(m[3], 10, 64)
	}
	if m[4] != "" {
		seconds, _ = strconv.ParseInt(m[4], 10, 64)
	}
	offset = hours*60*60 + minutes*60 + seconds
	if m[1] == "-" {
		offset = -offset
	}
	return offset, true
}
