// Copyright 2018 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgdate

import (
	"testing"
	"time"

	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgerror"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	testCases := []struct {
		s        string
		loc      *time.Location
		expected time.Time
	}{
		{"2023-11-02T14:05:09Z", nil, time.Date(2023, 11, 2, 14, 5, 9, 0, time.UTC)},
		{"2023-11-02 14:05:09", nil, time.Date(2023, 11, 2, 14, 5, 9, 0, time.UTC)},
		{"2023-11-02 14:05:09.5+01:00", nil, time.Date(2023, 11, 2, 13, 5, 9, 500000000, time.UTC)},
		{"2023-11-02 14:05", ny, time.Date(2023, 11, 2, 18, 5, 0, 0, time.UTC)},
		{"2023-11-02", nil, time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range testCases {
		t.Run(tc.s, func(t *testing.T) {
			ts, err := ParseTimestamp(tc.loc, tc.s)
			require.NoError(t, err)
			require.True(t, tc.expected.Equal(ts), "expected %s, got %s", tc.expected, ts)
		})
	}

	_, err = ParseTimestamp(nil, "02-NOV-2023")
	require.Error(t, err)
	require.Equal(t, pgcode.InvalidDatetimeFormat, pgerror.GetPGCode(err))
}
