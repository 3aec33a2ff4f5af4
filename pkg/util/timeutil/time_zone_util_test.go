// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeZoneStringToLocation(t *testing.T) {
	ref := time.Date(2023, 11, 2, 14, 5, 9, 0, time.UTC)
	testCases := []struct {
		tz             string
		expectedOffset int
		expectedErr    bool
	}{
		{tz: "UTC", expectedOffset: 0},
		{tz: "", expectedOffset: 0},
		{tz: "local", expectedOffset: 0},
		{tz: "Asia/Kolkata", expectedOffset: 5*60*60 + 30*60},
		{tz: "America/New_York", expectedOffset: -4 * 60 * 60},
		{tz: "UTC+05:30", expectedOffset: 5*60*60 + 30*60},
		{tz: "gmt-3", expectedOffset: -3 * 60 * 60},
		{tz: "UTC+16:00", expectedErr: true},
		{tz: "Mars/Olympus_Mons", expectedErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.tz, func(t *testing.T) {
			loc, err := TimeZoneStringToLocation(tc.tz)
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, offset := ref.In(loc).Zone()
			require.Equal(t, tc.expectedOffset, offset)
			if _, ok := TimeZoneOffsetStringConversion(tc.tz); ok {
				require.Equal(t, tc.tz, loc.String())
			}
		})
	}
}

func TestTimeZoneOffsetStringConversion(t *testing.T) {
	testCases := []struct {
		s      string
		offset int64
		ok     bool
	}{
		{"UTC+1", 3600, true},
		{"GMT-01:30", -5400, true},
		{"utc+10:00:15", 36015, true},
		{"UTC", 0, false},
		{"UTC+16:00", 0, false},
		{"UTC+16", 57600, true},
		{"UTC+1:30", 5400, true},
		{"UTC+01:30x", 0, false},
		{"America/New_York", 0, false},
	}
	for _, tc := range testCases {
		offset, ok := TimeZoneOffsetStringConversion(tc.s)
		require.Equal(t, tc.ok, ok, tc.s)
		require.Equal(t, tc.offset, offset, tc.s)
	}
}
