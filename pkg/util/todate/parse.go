// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"strings"
	"time"
)

// maxNamePadding is the width MONTH and DAY names are blank padded to.
const maxNamePadding = 9

var (
	monthNames   [12]string
	monthAbbrevs [12]string
	dayNames     [7]string
	dayAbbrevs   [7]string
)

func init() {
	for i := range monthNames {
		monthNames[i] = strings.ToUpper(time.Month(i + 1).String())
		monthAbbrevs[i] = monthNames[i][:3]
	}
	for i := range dayNames {
		dayNames[i] = strings.ToUpper(time.Weekday(i).String())
		dayAbbrevs[i] = dayNames[i][:3]
	}
}

var (
	meridians       = []string{"AM", "PM"}
	meridiansDotted = []string{"A.M.", "P.M."}
	eras            = []string{"AD", "BC"}
	erasDotted      = []string{"A.D.", "B.C."}
)

// parsedField is a field value together with the input offset it was read
// from.
type parsedField struct {
	val int
	pos int
	set bool
}

func (f *parsedField) record(val, pos int) {
	*f = parsedField{val: val, pos: pos, set: true}
}

// parsedFields accumulates the fields read from the input.
type parsedFields struct {
	year, month, day, dayOfYear, weekday parsedField
	hour, minute, second                 parsedField
	// pm is 1 for PM, bc is 1 for BC.
	pm, bc parsedField

	yearWidth int
	hour12    bool
}

type parser struct {
	text      string
	pos       int
	fragments []Fragment
	fields    parsedFields
}

// Parse interprets text according to the pattern, in strict mode: every
// field must have its exact width, every literal must match byte for
// byte, out of range values are rejected and trailing input is an error.
//
// Fields missing from the pattern take their defaults from now, as seen in
// loc: the current year and month, the first day of the month and
// midnight. The result is normalized to UTC.
func (p *Pattern) Parse(now time.Time, text string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	ps := parser{text: text, fragments: p.fragments}
	for i := range p.fragments {
		if err := ps.parseFragment(i); err != nil {
			return time.Time{}, err
		}
	}
	if ps.pos < len(text) {
		return time.Time{}, newInvalidDateError(ps.pos, "unexpected trailing characters %q", clip(text[ps.pos:]))
	}
	return ps.fields.resolve(now.In(loc), loc)
}

func (ps *parser) rest() string {
	return ps.text[ps.pos:]
}

func (ps *parser) parseFragment(i int) error {
	f := ps.fragments[i]
	start := ps.pos
	switch f.Field {
	case fieldNone:
		if !strings.HasPrefix(ps.rest(), f.Literal) {
			return newInvalidDateError(start, "expected %q", f.Literal)
		}
		ps.pos += len(f.Literal)
		return nil

	case FieldMonthName:
		names := monthAbbrevs[:]
		if f.Width == 4 {
			names = monthNames[:]
		}
		idx, err := ps.matchName(names, f)
		if err != nil {
			return err
		}
		ps.fields.month.record(idx+1, start)
		ps.skipNamePadding(i, len(names[idx]))
		return nil

	case FieldWeekdayName:
		names := dayAbbrevs[:]
		if f.Width == 4 {
			names = dayNames[:]
		}
		idx, err := ps.matchName(names, f)
		if err != nil {
			return err
		}
		ps.fields.weekday.record(idx+1, start)
		ps.skipNamePadding(i, len(names[idx]))
		return nil

	case FieldMeridian:
		names := meridians
		if f.Width == 4 {
			names = meridiansDotted
		}
		idx, err := ps.matchName(names, f)
		if err != nil {
			return err
		}
		ps.fields.pm.record(idx, start)
		return nil

	case FieldEra:
		names := eras
		if f.Width == 4 {
			names = erasDotted
		}
		idx, err := ps.matchName(names, f)
		if err != nil {
			return err
		}
		ps.fields.bc.record(idx, start)
		return nil
	}

	v, err := ps.readNumber(f)
	if err != nil {
		return err
	}
	if err := checkRange(f, v, start); err != nil {
		return err
	}
	if f.Flags&FlagOrdinal != 0 {
		suffix := ordinalSuffix(v)
		if r := ps.rest(); len(r) < 2 || !strings.EqualFold(r[:2], suffix) {
			return newInvalidDateError(ps.pos, "expected ordinal suffix %q", suffix)
		}
		ps.pos += 2
	}

	fs := &ps.fields
	switch f.Field {
	case FieldYear:
		fs.year.record(v, start)
		fs.yearWidth = f.Width
	case FieldMonth:
		fs.month.record(v, start)
	case FieldDayOfMonth:
		fs.day.record(v, start)
	case FieldDayOfYear:
		fs.dayOfYear.record(v, start)
	case FieldDayOfWeek:
		fs.weekday.record(v, start)
	case FieldHour24:
		fs.hour.record(v, start)
	case FieldHour12:
		fs.hour.record(v, start)
		fs.hour12 = true
	case FieldMinute:
		fs.minute.record(v, start)
	case FieldSecond:
		fs.second.record(v, start)
	}
	return nil
}

// readNumber reads exactly f.Width digits, or 1 to f.Width digits in fill
// mode.
func (ps *parser) readNumber(f Fragment) (int, error) {
	minDigits := f.Width
	if f.fillMode() {
		minDigits = 1
	}
	start, v, n := ps.pos, 0, 0
	for n < f.Width && ps.pos < len(ps.text) && isDigit(ps.text[ps.pos]) {
		v = v*10 + int(ps.text[ps.pos]-'0')
		ps.pos++
		n++
	}
	if n < minDigits {
		if minDigits == 1 {
			return 0, newInvalidDateError(start, "expected a number for %s", f.Directive)
		}
		return 0, newInvalidDateError(start, "expected %d digits for %s", minDigits, f.Directive)
	}
	return v, nil
}

// matchName matches one of names, ignoring case.
func (ps *parser) matchName(names []string, f Fragment) (int, error) {
	r := ps.rest()
	for i, name := range names {
		if len(r) >= len(name) && strings.EqualFold(r[:len(name)], name) {
			ps.pos += len(name)
			return i, nil
		}
	}
	return 0, newInvalidDateError(ps.pos, "expected a %s for %s", f.Field, f.Directive)
}

// skipNamePadding consumes the blanks padding a MONTH or DAY name to its
// full width, leaving the blanks a following literal needs.
func (ps *parser) skipNamePadding(i int, nameLen int) {
	f := ps.fragments[i]
	if f.Width != 4 || f.fillMode() {
		return
	}
	avail := 0
	for ps.pos+avail < len(ps.text) && ps.text[ps.pos+avail] == ' ' {
		avail++
	}
	pad := maxNamePadding - nameLen
	if pad > avail {
		pad = avail
	}
	if i+1 < len(ps.fragments) && ps.fragments[i+1].IsLiteral() {
		lit := ps.fragments[i+1].Literal
		lead := len(lit) - len(strings.TrimLeft(lit, " "))
		if pad > avail-lead {
			pad = avail - lead
		}
	}
	if pad > 0 {
		ps.pos += pad
	}
}

// checkRange rejects values that cannot be valid whatever the other fields
// are. The day of month and day of year are checked again once the month
// and year are known.
func checkRange(f Fragment, v int, pos int) error {
	lo, hi := 0, 0
	switch f.Field {
	case FieldYear:
		if f.Width == 4 && v == 0 {
			return newRangeError(codeYearRange, pos, "year 0 is not in range")
		}
		return nil
	case FieldMonth:
		lo, hi = 1, 12
	case FieldDayOfMonth:
		lo, hi = 1, 31
	case FieldDayOfYear:
		if v < 1 || v > 366 {
			return newRangeError(codeDayOfYearRange, pos, "day of year %d is not in range", v)
		}
		return nil
	case FieldDayOfWeek:
		lo, hi = 1, 7
	case FieldHour24:
		lo, hi = 0, 23
	case FieldHour12:
		lo, hi = 1, 12
	case FieldMinute, FieldSecond:
		lo, hi = 0, 59
	default:
		return nil
	}
	if v < lo || v > hi {
		return newRangeError(codeInvalidDate, pos, "%s %d is not in range %d-%d", f.Field, v, lo, hi)
	}
	return nil
}

// resolve assembles the parsed fields into an instant.
func (fs *parsedFields) resolve(now time.Time, loc *time.Location) (time.Time, error) {
	year := now.Year()
	if fs.year.set {
		year = fs.year.val
		if fs.yearWidth < 4 {
			scale := pow10(fs.yearWidth)
			year = now.Year()/scale*scale + fs.year.val
		}
		if fs.bc.set && fs.bc.val == 1 {
			// There is no year 0: 1 BC is year 0, 2 BC is year -1.
			year = 1 - year
		}
	}

	month := now.Month()
	if fs.month.set {
		month = time.Month(fs.month.val)
	}

	day := 1
	if fs.dayOfYear.set {
		if n := daysInYear(year); fs.dayOfYear.val > n {
			return time.Time{}, newRangeError(codeDayOfYearRange, fs.dayOfYear.pos,
				"day of year %d is not in range 1-%d", fs.dayOfYear.val, n)
		}
		t := time.Date(year, time.January, fs.dayOfYear.val, 0, 0, 0, 0, time.UTC)
		if fs.month.set && t.Month() != month {
			return time.Time{}, newInvalidDateError(fs.dayOfYear.pos,
				"day of year %d is not in month %d", fs.dayOfYear.val, int(month))
		}
		month, day = t.Month(), t.Day()
	}
	if fs.day.set {
		if n := daysIn(month, year); fs.day.val > n {
			return time.Time{}, newRangeError(codeInvalidDate, fs.day.pos,
				"day of month %d is not in range 1-%d", fs.day.val, n)
		}
		day = fs.day.val
	}

	hour := 0
	if fs.hour.set {
		hour = fs.hour.val
		if fs.hour12 {
			hour %= 12
			if fs.pm.set && fs.pm.val == 1 {
				hour += 12
			}
		}
	}

	t := time.Date(year, month, day, hour, fs.minute.val, fs.second.val, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != fs.minute.val || t.Second() != fs.second.val {
		// time.Date moved a wall time skipped by a transition in loc.
		return time.Time{}, newInvalidDateError(fs.timeOfDayPos(),
			"local time %04d-%02d-%02d %02d:%02d:%02d does not exist in time zone %s",
			year, int(month), day, hour, fs.minute.val, fs.second.val, loc)
	}
	if fs.weekday.set && int(t.Weekday())+1 != fs.weekday.val {
		return time.Time{}, newInvalidDateError(fs.weekday.pos,
			"day of week does not match %s", t.Format("2006-01-02"))
	}
	return t.UTC(), nil
}

// timeOfDayPos is the input offset of the first time of day field read,
// falling back to the date fields.
func (fs *parsedFields) timeOfDayPos() int {
	for _, f := range []parsedField{fs.hour, fs.minute, fs.second, fs.day, fs.dayOfYear, fs.month, fs.year} {
		if f.set {
			return f.pos
		}
	}
	return 0
}

func ordinalSuffix(v int) string {
	if n := v % 100; n >= 11 && n <= 13 {
		return "th"
	}
	switch v % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
