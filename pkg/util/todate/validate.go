// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

// Validate checks a token sequence for duplicated, conflicting and
// disallowed directives. Duplicates and conflicts are reported before
// disallowed directives, so a conflict is a bad format even when one of
// the conflicting directives is unsupported.
func Validate(tokens []Token) error {
	var counts [numDirectives]int
	var first [numDirectives]int
	for i, tok := range tokens {
		if tok.Kind != TokenDirective {
			continue
		}
		if counts[tok.ID] == 0 {
			first[tok.ID] = i
		}
		counts[tok.ID]++
		if counts[tok.ID] > 1 && !directiveInfos[tok.ID].repeatable {
			return newBadFormatError(tok.Pos, "directive %s specified more than once", tok.ID)
		}
	}

	for _, group := range exclusionGroups {
		var present []DirectiveID
		for _, id := range group {
			if counts[id] > 0 {
				present = append(present, id)
			}
		}
		if len(present) > 1 {
			a, b := tokens[first[present[0]]], tokens[first[present[1]]]
			if b.Pos < a.Pos {
				a, b = b, a
			}
			return newBadFormatError(b.Pos, "directive %s conflicts with %s", b.ID, a.ID)
		}
	}

	for _, tok := range tokens {
		if tok.Kind == TokenDirective && directiveInfos[tok.ID].disallowed {
			return newUnimplementedError(tok, "directive %s is not supported", tok.ID)
		}
	}
	return nil
}
