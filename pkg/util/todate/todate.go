// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package todate implements Oracle TO_DATE format templates. A template
// such as "YYYY-MM-DD HH24:MI:SS" is tokenized, validated for duplicated
// and conflicting directives, and translated into a Pattern. A Pattern
// parses date strings strictly into UTC instants and can format times
// back.
package todate

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/oradate/pkg/util/timeutil"
)

// LoadLocation resolves a timezone name. An empty name is UTC. A name that
// cannot be resolved is reported as an invalid date.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	loc, err := timeutil.TimeZoneStringToLocation(timezone)
	if err != nil {
		return nil, errors.Mark(
			pgerror.Wrapf(err, pgcode.InvalidParameterValue, "invalid time zone %q", timezone),
			ErrInvalidDate)
	}
	return loc, nil
}

// Parse parses text according to template, interpreting the result in the
// given timezone ("UTC" when empty). The template is compiled before the
// timezone is resolved, so template errors take precedence.
func Parse(text, template, timezone string) (time.Time, error) {
	p, err := Translate(template)
	DefaultMetrics.recordCompile(err)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseIn(p, text, timezone)
	DefaultMetrics.recordParse(err)
	return t, err
}

// ParseWithCache is like Parse but takes the compiled template from c.
func ParseWithCache(
	ctx context.Context, c *FormatCache, text, template, timezone string,
) (time.Time, error) {
	if c == nil {
		return time.Time{}, errors.AssertionFailedf("nil format cache")
	}
	p, err := c.Lookup(ctx, template)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseIn(p, text, timezone)
	c.metrics.recordParse(err)
	return t, err
}

func parseIn(p *Pattern, text, timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return p.Parse(timeutil.Now(), text, loc)
}
