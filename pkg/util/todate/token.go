// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"fmt"
	"strings"
)

const (
	// tokenBufferCapacity is the number of cells a tokenized template may
	// occupy. A directive costs two cells, a literal two plus its length.
	tokenBufferCapacity = 512
	// maxLiteralLength bounds a single literal run.
	maxLiteralLength = 210
)

// Flags qualify a directive token.
type Flags uint8

const (
	// FlagOrdinal is set by a TH modifier.
	FlagOrdinal Flags = 1 << iota
	// FlagSpelled is set by an SP modifier.
	FlagSpelled
	// FlagFillMode is set on directives that follow an odd number of FM
	// directives.
	FlagFillMode
	// FlagLowerSuffix is set when the TH modifier is written in lower
	// case.
	FlagLowerSuffix
)

func (f Flags) String() string {
	var parts []string
	if f&FlagOrdinal != 0 {
		if f&FlagLowerSuffix != 0 {
			parts = append(parts, "th")
		} else {
			parts = append(parts, "TH")
		}
	}
	if f&FlagSpelled != 0 {
		parts = append(parts, "SP")
	}
	if f&FlagFillMode != 0 {
		parts = append(parts, "FM")
	}
	return strings.Join(parts, "|")
}

// CaseHint records the casing of a directive as written in the template.
// It selects the casing of names and markers when formatting.
type CaseHint uint8

const (
	// CaseUpper is used for "MONTH".
	CaseUpper CaseHint = iota
	// CaseInitCap is used for "Month".
	CaseInitCap
	// CaseLower is used for "month".
	CaseLower
)

func (c CaseHint) String() string {
	switch c {
	case CaseInitCap:
		return "initcap"
	case CaseLower:
		return "lower"
	default:
		return "upper"
	}
}

// caseHintOf derives the case hint from the matched directive text.
func caseHintOf(s string) CaseHint {
	letters := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		isLower := 'a' <= c && c <= 'z'
		if !isLower && !('A' <= c && c <= 'Z') {
			continue
		}
		letters++
		switch {
		case letters == 1 && isLower:
			return CaseLower
		case letters == 2:
			if isLower {
				return CaseInitCap
			}
			return CaseUpper
		}
	}
	return CaseUpper
}

// TokenKind distinguishes directives from literal runs.
type TokenKind uint8

const (
	// TokenDirective is a directive token.
	TokenDirective TokenKind = iota
	// TokenLiteral is a literal run.
	TokenLiteral
)

// Token is an element of a tokenized template.
type Token struct {
	Kind TokenKind
	// Pos is the byte offset of the token in the template.
	Pos int

	// Directive tokens.
	ID    DirectiveID
	Flags Flags
	Case  CaseHint

	// Literal tokens.
	Text   string
	Quoted bool
}

func (t Token) String() string {
	if t.Kind == TokenLiteral {
		if t.Quoted {
			return fmt.Sprintf("literal %q quoted", t.Text)
		}
		return fmt.Sprintf("literal %q", t.Text)
	}
	s := "directive " + t.ID.String()
	if t.Flags != 0 {
		s += " " + t.Flags.String()
	}
	if t.Case != CaseUpper {
		s += " " + t.Case.String()
	}
	return s
}

// tokenBuffer accumulates tokens and enforces the capacity bound.
type tokenBuffer struct {
	tokens []Token
	cells  int
}

func (b *tokenBuffer) addDirective(pos int, id DirectiveID, flags Flags, hint CaseHint) error {
	if b.cells+2 > tokenBufferCapacity {
		return newOverflowError(pos, "template too long")
	}
	b.cells += 2
	b.tokens = append(b.tokens, Token{Kind: TokenDirective, Pos: pos, ID: id, Flags: flags, Case: hint})
	return nil
}

func (b *tokenBuffer) addLiteral(pos int, text string, quoted bool) error {
	if text == "" {
		return nil
	}
	if len(text) > maxLiteralLength {
		return newBadFormatError(pos, "literal longer than %d characters", maxLiteralLength)
	}
	if b.cells+2+len(text) > tokenBufferCapacity {
		return newOverflowError(pos, "template too long")
	}
	b.cells += 2 + len(text)
	b.tokens = append(b.tokens, Token{Kind: TokenLiteral, Pos: pos, Text: text, Quoted: quoted})
	return nil
}
