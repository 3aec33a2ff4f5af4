// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"strings"

	"github.com/cockroachdb/redact"
)

// DirectiveID is the canonical id of a template directive. Spellings that
// denote the same field (HH and HH12, AM and PM, ...) share one id.
type DirectiveID uint8

// The order of the ids follows the legacy grammar codes.
const (
	DirUnknown DirectiveID = iota
	DirCC
	DirSCC
	DirI
	DirY
	DirIY
	DirYY
	DirIYY
	DirYYY
	DirIYYY
	DirYYYY
	DirYCommaYYY
	DirSYYYY
	DirSYCommaYYY
	DirYEAR
	DirSYEAR
	DirQ
	DirMM
	DirIW
	DirWW
	DirW
	DirD
	DirDD
	DirDDD
	DirHH24
	DirHH12
	DirMI
	DirSS
	DirSSSSS
	DirJ
	DirMONTH
	DirMON
	DirDAY
	DirDY
	DirAMPM
	DirAMPMDotted
	DirADBC
	DirADBCDotted
	DirRM
	DirFM
	DirRR
	DirRRRR
	DirFX
	DirE
	DirEE
	// DirDefaultFormat stands for an empty template.
	DirDefaultFormat

	numDirectives
)

var _ redact.SafeValue = DirectiveID(0)

// directiveInfo is the per-id metadata of the directive table.
type directiveInfo struct {
	name string
	// suffixable directives may absorb a TH/SP modifier.
	suffixable bool
	// repeatable directives may occur more than once in a template.
	repeatable bool
	// disallowed directives are recognized but rejected by validation.
	disallowed bool
	// field is the pattern field the directive translates to. Directives
	// with fieldNone are untranslatable.
	field FieldKind
	width int
}

var directiveInfos = [numDirectives]directiveInfo{
	DirUnknown:       {name: "?"},
	DirCC:            {name: "CC", suffixable: true, disallowed: true},
	DirSCC:           {name: "SCC", suffixable: true, disallowed: true},
	DirI:             {name: "I", suffixable: true, disallowed: true},
	DirY:             {name: "Y", suffixable: true, field: FieldYear, width: 1},
	DirIY:            {name: "IY", suffixable: true, disallowed: true},
	DirYY:            {name: "YY", suffixable: true, field: FieldYear, width: 2},
	DirIYY:           {name: "IYY", suffixable: true, disallowed: true},
	DirYYY:           {name: "YYY", suffixable: true, field: FieldYear, width: 3},
	DirIYYY:          {name: "IYYY", suffixable: true, disallowed: true},
	DirYYYY:          {name: "YYYY", suffixable: true, field: FieldYear, width: 4},
	DirYCommaYYY:     {name: "Y,YYY", suffixable: true},
	DirSYYYY:         {name: "SYYYY", suffixable: true},
	DirSYCommaYYY:    {name: "SY,YYY", suffixable: true},
	DirYEAR:          {name: "YEAR", disallowed: true},
	DirSYEAR:         {name: "SYEAR", disallowed: true},
	DirQ:             {name: "Q", suffixable: true, disallowed: true},
	DirMM:            {name: "MM", suffixable: true, field: FieldMonth, width: 2},
	DirIW:            {name: "IW", suffixable: true, disallowed: true},
	DirWW:            {name: "WW", suffixable: true, disallowed: true},
	DirW:             {name: "W", suffixable: true, disallowed: true},
	DirD:             {name: "D", suffixable: true, field: FieldDayOfWeek, width: 1},
	DirDD:            {name: "DD", suffixable: true, field: FieldDayOfMonth, width: 2},
	DirDDD:           {name: "DDD", suffixable: true, field: FieldDayOfYear, width: 3},
	DirHH24:          {name: "HH24", suffixable: true, field: FieldHour24, width: 2},
	DirHH12:          {name: "HH12", suffixable: true, field: FieldHour12, width: 2},
	DirMI:            {name: "MI", suffixable: true, field: FieldMinute, width: 2},
	DirSS:            {name: "SS", suffixable: true, field: FieldSecond, width: 2},
	DirSSSSS:         {name: "SSSSS", suffixable: true},
	DirJ:             {name: "J", suffixable: true},
	DirMONTH:         {name: "MONTH", field: FieldMonthName, width: 4},
	DirMON:           {name: "MON", field: FieldMonthName, width: 3},
	DirDAY:           {name: "DAY", field: FieldWeekdayName, width: 4},
	DirDY:            {name: "DY", field: FieldWeekdayName, width: 3},
	DirAMPM:          {name: "AM", field: FieldMeridian, width: 2},
	DirAMPMDotted:    {name: "A.M.", field: FieldMeridian, width: 4},
	DirADBC:          {name: "AD", field: FieldEra, width: 2},
	DirADBCDotted:    {name: "A.D.", field: FieldEra, width: 4},
	DirRM:            {name: "RM"},
	DirFM:            {name: "FM", suffixable: true, repeatable: true},
	DirRR:            {name: "RR", suffixable: true},
	DirRRRR:          {name: "RRRR", suffixable: true},
	DirFX:            {name: "FX", suffixable: true, repeatable: true},
	DirE:             {name: "E"},
	DirEE:            {name: "EE"},
	DirDefaultFormat: {name: "<default>"},
}

// String returns the canonical spelling of the directive.
func (id DirectiveID) String() string {
	if id >= numDirectives {
		return directiveInfos[DirUnknown].name
	}
	return directiveInfos[id].name
}

// SafeValue implements the redact.SafeValue interface.
func (id DirectiveID) SafeValue() {}

// Suffixable reports whether the directive may carry a TH/SP modifier.
func (id DirectiveID) Suffixable() bool {
	return id < numDirectives && directiveInfos[id].suffixable
}

// Translatable reports whether the directive has a pattern field mapping.
func (id DirectiveID) Translatable() bool {
	return id < numDirectives && directiveInfos[id].field != fieldNone
}

// directiveEntry is one spelling in the directive table.
type directiveEntry struct {
	text string
	id   DirectiveID
}

// directiveTable lists every recognized spelling, sorted. Lookup is
// case-insensitive and the longest spelling that prefixes the input wins.
var directiveTable = []directiveEntry{
	{"A.D.", DirADBCDotted},
	{"A.M.", DirAMPMDotted},
	{"AD", DirADBC},
	{"AM", DirAMPM},
	{"B.C.", DirADBCDotted},
	{"BC", DirADBC},
	{"CC", DirCC},
	{"D", DirD},
	{"DAY", DirDAY},
	{"DD", DirDD},
	{"DDD", DirDDD},
	{"DY", DirDY},
	{"E", DirE},
	{"EE", DirEE},
	{"FM", DirFM},
	{"FX", DirFX},
	{"HH", DirHH12},
	{"HH12", DirHH12},
	{"HH24", DirHH24},
	{"I", DirI},
	{"IW", DirIW},
	{"IY", DirIY},
	{"IYY", DirIYY},
	{"IYYY", DirIYYY},
	{"J", DirJ},
	{"MI", DirMI},
	{"MM", DirMM},
	{"MON", DirMON},
	{"MONTH", DirMONTH},
	{"P.M.", DirAMPMDotted},
	{"PM", DirAMPM},
	{"Q", DirQ},
	{"RM", DirRM},
	{"RR", DirRR},
	{"RRRR", DirRRRR},
	{"SCC", DirSCC},
	{"SS", DirSS},
	{"SSSSS", DirSSSSS},
	{"SY,YYY", DirSYCommaYYY},
	{"SYEAR", DirSYEAR},
	{"SYYYY", DirSYYYY},
	{"W", DirW},
	{"WW", DirWW},
	{"Y", DirY},
	{"Y,YYY", DirYCommaYYY},
	{"YEAR", DirYEAR},
	{"YY", DirYY},
	{"YYY", DirYYY},
	{"YYYY", DirYYYY},
}

// Modifier flags that can follow a suffixable directive.
type modifierEntry struct {
	text  string
	flags Flags
}

// modifierTable is tried longest first.
var modifierTable = []modifierEntry{
	{"SPTH", FlagSpelled | FlagOrdinal},
	{"THSP", FlagOrdinal | FlagSpelled},
	{"SP", FlagSpelled},
	{"TH", FlagOrdinal},
}

// exclusionGroups are sets of directives whose occurrences, summed over the
// whole template, must not exceed one.
var exclusionGroups = [][]DirectiveID{
	{DirDDD, DirJ},
	{
		DirY, DirYY, DirYYY, DirYYYY, DirSYYYY, DirYCommaYYY, DirSYCommaYYY,
		DirRR, DirRRRR, DirI, DirIY, DirIYY, DirIYYY,
	},
	{DirHH12, DirHH24},
	{DirAMPM, DirAMPMDotted},
	{DirADBC, DirADBCDotted},
	{DirMONTH, DirMON, DirMM, DirRM},
	{DirDAY, DirDY, DirD},
	{DirAMPM, DirAMPMDotted, DirHH24},
	{DirSYYYY, DirSYCommaYYY, DirADBC, DirADBCDotted},
	{DirDD, DirDDD},
}

// trieNode is a node of the directive lookup trie. Keys are upper case.
type trieNode struct {
	children map[byte]*trieNode
	id       DirectiveID
}

func (n *trieNode) insert(text string, id DirectiveID) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		child, ok := n.children[c]
		if !ok {
			child = &trieNode{children: map[byte]*trieNode{}}
			n.children[c] = child
		}
		n = child
	}
	n.id = id
}

// longestMatch returns the id and length of the longest directive
// spelling that prefixes s, ignoring ASCII case.
func (n *trieNode) longestMatch(s string) (DirectiveID, int) {
	id, length := DirUnknown, 0
	for i := 0; i < len(s); i++ {
		child, ok := n.children[upper(s[i])]
		if !ok {
			break
		}
		n = child
		if n.id != DirUnknown {
			id, length = n.id, i+1
		}
	}
	return id, length
}

var directiveTrie = func() *trieNode {
	root := &trieNode{children: map[byte]*trieNode{}}
	for _, e := range directiveTable {
		root.insert(e.text, e.id)
	}
	return root
}()

// matchModifier returns the flags and length of the modifier prefixing s.
func matchModifier(s string) (Flags, int) {
	for _, m := range modifierTable {
		if len(s) >= len(m.text) && strings.EqualFold(s[:len(m.text)], m.text) {
			return m.flags, len(m.text)
		}
	}
	return 0, 0
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// DirectiveSpec describes one recognized directive spelling.
type DirectiveSpec struct {
	Text         string
	ID           DirectiveID
	Suffixable   bool
	Translatable bool
	Disallowed   bool
}

// Directives returns the recognized directive spellings in table order.
func Directives() []DirectiveSpec {
	ret := make([]DirectiveSpec, len(directiveTable))
	for i, e := range directiveTable {
		info := directiveInfos[e.id]
		ret[i] = DirectiveSpec{
			Text:         e.text,
			ID:           e.id,
			Suffixable:   info.suffixable,
			Translatable: info.field != fieldNone,
			Disallowed:   info.disallowed,
		}
	}
	return ret
}
