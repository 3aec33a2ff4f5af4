// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLongestMatch(t *testing.T) {
	testCases := []struct {
		in     string
		id     DirectiveID
		length int
	}{
		{"DDD", DirDDD, 3},
		{"DD-", DirDD, 2},
		{"dy", DirDY, 2},
		{"HH", DirHH12, 2},
		{"HH1", DirHH12, 2},
		{"hh24", DirHH24, 4},
		{"MONTH", DirMONTH, 5},
		{"MONT", DirMON, 3},
		{"Y,YYY", DirYCommaYYY, 5},
		{"Y,YY", DirY, 1},
		{"SYYYY", DirSYYYY, 5},
		{"SY,YYY", DirSYCommaYYY, 6},
		{"A.M.", DirAMPMDotted, 4},
		{"A.", DirUnknown, 0},
		{"p.m.", DirAMPMDotted, 4},
		{"X", DirUnknown, 0},
		{"", DirUnknown, 0},
	}
	for _, tc := range testCases {
		id, n := directiveTrie.longestMatch(tc.in)
		require.Equal(t, tc.id, id, tc.in)
		require.Equal(t, tc.length, n, tc.in)
	}
}

func TestEveryTableEntryMatchesItself(t *testing.T) {
	for _, e := range directiveTable {
		id, n := directiveTrie.longestMatch(e.text)
		require.Equal(t, e.id, id, e.text)
		require.Equal(t, len(e.text), n, e.text)
	}
}

func TestMatchModifier(t *testing.T) {
	testCases := []struct {
		in     string
		flags  Flags
		length int
	}{
		{"TH", FlagOrdinal, 2},
		{"th-", FlagOrdinal, 2},
		{"SP", FlagSpelled, 2},
		{"SPTH", FlagSpelled | FlagOrdinal, 4},
		{"thsp", FlagOrdinal | FlagSpelled, 4},
		{"S", 0, 0},
		{"MM", 0, 0},
	}
	for _, tc := range testCases {
		flags, n := matchModifier(tc.in)
		require.Equal(t, tc.flags, flags, tc.in)
		require.Equal(t, tc.length, n, tc.in)
	}
}

func TestCaseHint(t *testing.T) {
	require.Equal(t, CaseUpper, caseHintOf("MONTH"))
	require.Equal(t, CaseInitCap, caseHintOf("Month"))
	require.Equal(t, CaseLower, caseHintOf("month"))
	require.Equal(t, CaseUpper, caseHintOf("MOnth"))
	require.Equal(t, CaseInitCap, caseHintOf("A.m."))
	require.Equal(t, CaseUpper, caseHintOf("D"))
	require.Equal(t, CaseLower, caseHintOf("d"))
}

func TestDirectives(t *testing.T) {
	ds := Directives()
	require.Len(t, ds, len(directiveTable))
	byText := make(map[string]DirectiveSpec, len(ds))
	for _, d := range ds {
		byText[d.Text] = d
	}
	require.Equal(t, DirectiveSpec{Text: "MON", ID: DirMON, Translatable: true}, byText["MON"])
	require.Equal(t, DirectiveSpec{Text: "J", ID: DirJ, Suffixable: true}, byText["J"])
	require.Equal(t, DirectiveSpec{Text: "IW", ID: DirIW, Suffixable: true, Disallowed: true}, byText["IW"])
	require.Equal(t, DirectiveSpec{Text: "HH", ID: DirHH12, Suffixable: true, Translatable: true}, byText["HH"])

	// Every id but the sentinels is reachable from the table.
	seen := make(map[DirectiveID]bool)
	for _, d := range ds {
		seen[d.ID] = true
	}
	for id := DirCC; id < DirDefaultFormat; id++ {
		require.True(t, seen[id], id.String())
	}
}

func TestFragments(t *testing.T) {
	p, err := Translate(`FMDD "of" Month`)
	require.NoError(t, err)
	want := []Fragment{
		{Field: FieldDayOfMonth, Width: 2, Directive: DirDD, Flags: FlagFillMode, Pos: 2},
		{Literal: " of ", Pos: 4},
		{Field: FieldMonthName, Width: 4, Directive: DirMONTH, Flags: FlagFillMode, Case: CaseInitCap, Pos: 10},
	}
	if diff := cmp.Diff(want, p.Fragments()); diff != "" {
		t.Errorf("unexpected fragments (-want +got):\n%s", diff)
	}
	require.Equal(t, "d' of 'MMMM", p.String())
}
