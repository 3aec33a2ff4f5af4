// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/knz/strtime"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// strftimeVerbs are the strftime conversions used for the fields that
// strftime can render directly.
var strftimeVerbs = map[FieldKind]string{
	FieldMonth:      "%m",
	FieldDayOfMonth: "%d",
	FieldDayOfYear:  "%j",
	FieldHour24:     "%H",
	FieldHour12:     "%I",
	FieldMinute:     "%M",
	FieldSecond:     "%S",
}

// applyCase renders s in the casing recorded for the directive. Casers
// are stateful, so one is made per call.
func applyCase(s string, hint CaseHint) string {
	switch hint {
	case CaseLower:
		return cases.Lower(language.English).String(s)
	case CaseInitCap:
		return cases.Title(language.English).String(s)
	default:
		return cases.Upper(language.English).String(s)
	}
}

// Format renders t, which should already be in the desired location,
// according to the pattern. Numbers are zero padded and MONTH and DAY
// names blank padded to their full width unless fill mode is on.
func (p *Pattern) Format(t time.Time) (string, error) {
	var sb strings.Builder
	for _, f := range p.fragments {
		if f.IsLiteral() {
			sb.WriteString(f.Literal)
			continue
		}
		s, err := formatField(f, t)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func formatField(f Fragment, t time.Time) (string, error) {
	switch f.Field {
	case FieldMonthName:
		verb := "%b"
		if f.Width == 4 {
			verb = "%B"
		}
		return formatName(f, t, verb)
	case FieldWeekdayName:
		verb := "%a"
		if f.Width == 4 {
			verb = "%A"
		}
		return formatName(f, t, verb)
	case FieldMeridian:
		s, err := strtime.Strftime(t, "%p")
		if err != nil {
			return "", errors.NewAssertionErrorWithWrappedErrf(err, "formatting %s", f.Directive)
		}
		if f.Width == 4 {
			s = s[:1] + "." + s[1:] + "."
		}
		return applyCase(s, f.Case), nil
	case FieldEra:
		s := "AD"
		if t.Year() <= 0 {
			s = "BC"
		}
		if f.Width == 4 {
			s = s[:1] + "." + s[1:] + "."
		}
		return applyCase(s, f.Case), nil
	}

	var s string
	switch f.Field {
	case FieldYear:
		year := t.Year()
		if year <= 0 {
			year = 1 - year
		}
		if f.Width < 4 {
			year %= pow10(f.Width)
		}
		s = fmt.Sprintf("%0*d", f.Width, year)
	case FieldDayOfWeek:
		s = strconv.Itoa(int(t.Weekday()) + 1)
	default:
		verb, ok := strftimeVerbs[f.Field]
		if !ok {
			return "", errors.AssertionFailedf("no format for %s", f.Field)
		}
		var err error
		if s, err = strtime.Strftime(t, verb); err != nil {
			return "", errors.NewAssertionErrorWithWrappedErrf(err, "formatting %s", f.Directive)
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return "", errors.NewAssertionErrorWithWrappedErrf(err, "formatting %s", f.Directive)
	}
	if f.fillMode() {
		s = strconv.Itoa(v)
	}
	if f.Flags&FlagOrdinal != 0 {
		suffix := ordinalSuffix(v)
		if f.Flags&FlagLowerSuffix == 0 {
			suffix = strings.ToUpper(suffix)
		}
		s += suffix
	}
	return s, nil
}

func formatName(f Fragment, t time.Time, verb string) (string, error) {
	s, err := strtime.Strftime(t, verb)
	if err != nil {
		return "", errors.NewAssertionErrorWithWrappedErrf(err, "formatting %s", f.Directive)
	}
	s = applyCase(s, f.Case)
	if f.Width == 4 && !f.fillMode() && len(s) < maxNamePadding {
		s += strings.Repeat(" ", maxNamePadding-len(s))
	}
	return s, nil
}
