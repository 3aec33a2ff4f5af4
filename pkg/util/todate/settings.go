// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import "github.com/cockroachdb/oradate/pkg/settings"

// FormatCacheSize is the number of compiled templates kept by caches made
// with NewDefaultFormatCache.
var FormatCacheSize = settings.RegisterIntSetting(
	"todate.format_cache.size",
	"number of compiled TO_DATE templates to cache",
	256,
	settings.PositiveInt,
)

// DefaultTimezone is the timezone used by callers that are not given one.
var DefaultTimezone = settings.RegisterStringSetting(
	"todate.default_timezone",
	"timezone in which to interpret parsed dates when none is given",
	"UTC",
	func(tz string) error {
		_, err := LoadLocation(tz)
		return err
	},
)

// NewDefaultFormatCache returns a cache sized by FormatCacheSize.
func NewDefaultFormatCache(m *Metrics) (*FormatCache, error) {
	return NewFormatCache(int(FormatCacheSize.Get()), m)
}
