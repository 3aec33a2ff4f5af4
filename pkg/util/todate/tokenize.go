// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits a template into directive and literal tokens. An empty
// template yields a single DirDefaultFormat directive.
func Tokenize(template string) ([]Token, error) {
	var buf tokenBuffer
	if template == "" {
		if err := buf.addDirective(0, DirDefaultFormat, 0, CaseUpper); err != nil {
			return nil, err
		}
		return buf.tokens, nil
	}

	fill := false
	for pos := 0; pos < len(template); {
		if !isAlnumAt(template, pos) {
			next, err := scanLiteral(&buf, template, pos)
			if err != nil {
				return nil, err
			}
			pos = next
			continue
		}

		id, n := directiveTrie.longestMatch(template[pos:])
		if id == DirUnknown {
			return nil, newBadFormatError(pos, "unknown directive at %q", clip(template[pos:]))
		}
		start, text := pos, template[pos:pos+n]
		pos += n

		var flags Flags
		if id.Suffixable() {
			if f, m := matchModifier(template[pos:]); m > 0 {
				if f&FlagOrdinal != 0 && strings.Contains(template[pos:pos+m], "t") {
					f |= FlagLowerSuffix
				}
				flags |= f
				pos += m
			}
		}
		if fill && id != DirFM {
			flags |= FlagFillMode
		}
		if err := buf.addDirective(start, id, flags, caseHintOf(text)); err != nil {
			return nil, err
		}
		if id == DirFM {
			fill = !fill
		}
	}
	return buf.tokens, nil
}

// scanLiteral consumes the literal run starting at pos and returns the
// position after it. Leading whitespace is emitted as a literal of its
// own. Double-quoted text is copied verbatim without the quotes and marks
// the remainder of the run as quoted.
func scanLiteral(buf *tokenBuffer, template string, pos int) (int, error) {
	start := pos
	for pos < len(template) && isSpace(template[pos]) {
		pos++
	}
	if pos > start {
		if err := buf.addLiteral(start, template[start:pos], false /* quoted */); err != nil {
			return 0, err
		}
		start = pos
	}

	var sb strings.Builder
	quoted := false
	for pos < len(template) && !isAlnumAt(template, pos) {
		if template[pos] == '"' {
			end := strings.IndexByte(template[pos+1:], '"')
			if end < 0 {
				return 0, newBadFormatError(pos, "unterminated quoted literal")
			}
			sb.WriteString(template[pos+1 : pos+1+end])
			quoted = true
			pos += end + 2
		} else {
			_, size := utf8.DecodeRuneInString(template[pos:])
			sb.WriteString(template[pos : pos+size])
			pos += size
		}
		if sb.Len() > maxLiteralLength {
			return 0, newBadFormatError(start, "literal longer than %d characters", maxLiteralLength)
		}
	}
	if err := buf.addLiteral(start, sb.String(), quoted); err != nil {
		return 0, err
	}
	return pos, nil
}

// isAlnumAt reports whether the rune at pos is a letter or digit. Such
// runes start directives; anything else is literal text.
func isAlnumAt(s string, pos int) bool {
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// clip shortens s for use in error messages.
func clip(s string) string {
	const max = 10
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
