// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultTemplate is the template used when none is given.
const DefaultTemplate = "YYYY-MM-DD HH24:MI:SS"

// patternCapacity bounds the length of a rendered pattern.
const patternCapacity = 512

// FieldKind is the calendar field a pattern fragment stands for.
type FieldKind uint8

const (
	fieldNone FieldKind = iota
	// FieldYear is the year, with Width digits.
	FieldYear
	// FieldMonth is the numeric month.
	FieldMonth
	// FieldMonthName is the month name, abbreviated when Width is 3.
	FieldMonthName
	// FieldDayOfMonth is the numeric day of month.
	FieldDayOfMonth
	// FieldDayOfYear is the numeric day of year.
	FieldDayOfYear
	// FieldDayOfWeek is the numeric day of week, 1 being Sunday.
	FieldDayOfWeek
	// FieldWeekdayName is the weekday name, abbreviated when Width is 3.
	FieldWeekdayName
	// FieldHour24 is the hour, 0 to 23.
	FieldHour24
	// FieldHour12 is the hour, 1 to 12.
	FieldHour12
	// FieldMinute is the minute.
	FieldMinute
	// FieldSecond is the second.
	FieldSecond
	// FieldMeridian is AM/PM, dotted when Width is 4.
	FieldMeridian
	// FieldEra is AD/BC, dotted when Width is 4.
	FieldEra
)

var fieldNames = [...]string{
	fieldNone:        "literal",
	FieldYear:        "year",
	FieldMonth:       "month",
	FieldMonthName:   "month name",
	FieldDayOfMonth:  "day of month",
	FieldDayOfYear:   "day of year",
	FieldDayOfWeek:   "day of week",
	FieldWeekdayName: "weekday name",
	FieldHour24:      "hour (0-23)",
	FieldHour12:      "hour (1-12)",
	FieldMinute:      "minute",
	FieldSecond:      "second",
	FieldMeridian:    "meridian",
	FieldEra:         "era",
}

func (k FieldKind) String() string {
	if int(k) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[k]
}

// SafeValue implements the redact.SafeValue interface.
func (k FieldKind) SafeValue() {}

// fieldLetters are the LDML pattern letters of each field.
var fieldLetters = [...]byte{
	FieldYear:        'y',
	FieldMonth:       'M',
	FieldMonthName:   'M',
	FieldDayOfMonth:  'd',
	FieldDayOfYear:   'D',
	FieldDayOfWeek:   'e',
	FieldWeekdayName: 'E',
	FieldHour24:      'H',
	FieldHour12:      'h',
	FieldMinute:      'm',
	FieldSecond:      's',
	FieldMeridian:    'a',
	FieldEra:         'G',
}

// Fragment is one element of a translated pattern: either a field or a
// literal run.
type Fragment struct {
	// Literal is the text of a literal fragment.
	Literal string

	Field     FieldKind
	Width     int
	Directive DirectiveID
	Flags     Flags
	Case      CaseHint

	// Pos is the byte offset in the template the fragment comes from.
	Pos int
}

// IsLiteral returns true for literal fragments.
func (f Fragment) IsLiteral() bool {
	return f.Field == fieldNone
}

func (f Fragment) fillMode() bool {
	return f.Flags&FlagFillMode != 0
}

// render appends the LDML form of the fragment.
func (f Fragment) render(sb *strings.Builder) {
	if f.IsLiteral() {
		renderLiteral(sb, f.Literal)
		return
	}
	n := f.Width
	switch f.Field {
	case FieldMonthName, FieldWeekdayName:
		// Width is already 3 or 4, which is what LDML uses for names.
	case FieldMeridian, FieldEra:
		if n == 2 {
			n = 1
		}
	case FieldYear:
		if f.fillMode() && n == 4 {
			n = 1
		}
	default:
		if f.fillMode() {
			n = 1
		}
	}
	for i := 0; i < n; i++ {
		sb.WriteByte(fieldLetters[f.Field])
	}
}

// renderLiteral quotes text that could be read as pattern letters.
func renderLiteral(sb *strings.Builder, text string) {
	needsQuotes := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\'' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			needsQuotes = true
			break
		}
	}
	if !needsQuotes {
		sb.WriteString(text)
		return
	}
	sb.WriteByte('\'')
	sb.WriteString(strings.ReplaceAll(text, "'", "''"))
	sb.WriteByte('\'')
}

// Pattern is a translated template. It is immutable and safe for
// concurrent use.
type Pattern struct {
	template  string
	fragments []Fragment
	rendered  string
}

// Template returns the template the pattern was translated from.
func (p *Pattern) Template() string {
	return p.template
}

// Fragments returns a copy of the pattern fragments.
func (p *Pattern) Fragments() []Fragment {
	return append([]Fragment(nil), p.fragments...)
}

// String returns the pattern in LDML (SimpleDateFormat) notation.
func (p *Pattern) String() string {
	return p.rendered
}

// Translate compiles a template into a pattern.
func Translate(template string) (*Pattern, error) {
	tokens, err := Tokenize(template)
	if err != nil {
		return nil, err
	}
	if err := Validate(tokens); err != nil {
		return nil, err
	}
	return TranslateTokens(template, tokens)
}

// TranslateTokens maps validated tokens to a pattern. Adjacent literal
// tokens are merged into one fragment.
func TranslateTokens(template string, tokens []Token) (*Pattern, error) {
	if len(tokens) == 1 && tokens[0].Kind == TokenDirective && tokens[0].ID == DirDefaultFormat {
		expanded, err := Tokenize(DefaultTemplate)
		if err != nil {
			return nil, errors.NewAssertionErrorWithWrappedErrf(err, "tokenizing default template")
		}
		tokens = expanded
	}

	p := &Pattern{template: template}
	for _, tok := range tokens {
		if tok.Kind == TokenLiteral {
			if n := len(p.fragments); n > 0 && p.fragments[n-1].IsLiteral() {
				p.fragments[n-1].Literal += tok.Text
				continue
			}
			p.fragments = append(p.fragments, Fragment{Literal: tok.Text, Pos: tok.Pos})
			continue
		}
		switch tok.ID {
		case DirFM, DirFX:
			// Fill mode is already carried by the flags of the following
			// directives, and matching is always exact.
			continue
		}
		info := directiveInfos[tok.ID]
		if info.field == fieldNone {
			return nil, newUnimplementedError(tok, "directive %s cannot be translated", tok.ID)
		}
		if tok.Flags&FlagSpelled != 0 {
			return nil, newUnimplementedError(tok, "spelled-out form of %s is not supported", tok.ID)
		}
		p.fragments = append(p.fragments, Fragment{
			Field:     info.field,
			Width:     info.width,
			Directive: tok.ID,
			Flags:     tok.Flags,
			Case:      tok.Case,
			Pos:       tok.Pos,
		})
	}

	var sb strings.Builder
	for _, f := range p.fragments {
		f.render(&sb)
		if sb.Len() > patternCapacity {
			return nil, newOverflowError(f.Pos, "translated pattern longer than %d characters", patternCapacity)
		}
	}
	p.rendered = sb.String()
	return p, nil
}
