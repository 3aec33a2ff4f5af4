// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// registry contains all defined settings, their types and default values.
//
// Entries in registry should be accompanied by an exported, typesafe getter
// on the returned setting.
//
// Registry should never be mutated after init (except in tests), as it is read
// concurrently by different callers.
var registry = map[InternalKey]wrappedSetting{}

// frozen becomes non-zero once the registry is "live".
var frozen int32

// Freeze ensures that no new settings can be defined after startup.
func Freeze() { atomic.StoreInt32(&frozen, 1) }

func assertNotFrozen(key InternalKey) {
	if atomic.LoadInt32(&frozen) > 0 {
		panic(fmt.Sprintf("registration must occur before startup: %s", key))
	}
}

// register adds a setting to the registry.
func register(key InternalKey, desc string, s setting) {
	assertNotFrozen(key)
	if _, ok := registry[key]; ok {
		panic(fmt.Sprintf("setting already defined: %s", key))
	}
	s.setToDefault()
	registry[key] = wrappedSetting{description: desc, setting: s}
}

// Hide prevents a setting from showing up in Keys. It can still be looked
// up and overridden if the exact key is known.
func Hide(key InternalKey) {
	assertNotFrozen(key)
	s, ok := registry[key]
	if !ok {
		panic(fmt.Sprintf("setting not found: %s", key))
	}
	s.hidden = true
	registry[key] = s
}

type wrappedSetting struct {
	description string
	hidden      bool
	setting     setting
}

// Keys returns a sorted slice with all the visible keys.
func Keys() (res []InternalKey) {
	res = make([]InternalKey, 0, len(registry))
	for k := range registry {
		if registry[k].hidden {
			continue
		}
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Lookup returns a Setting by key along with its description.
func Lookup(key InternalKey) (Setting, string, bool) {
	v, ok := registry[key]
	if !ok {
		return nil, "", false
	}
	return v.setting, v.description, true
}

// ResetToDefaults restores the default value of every registered setting.
func ResetToDefaults() {
	for _, v := range registry {
		v.setting.setToDefault()
	}
}

// TestingSaveRegistry can be used in tests to save/restore the current
// contents of the registry.
func TestingSaveRegistry() func() {
	var origRegistry = make(map[InternalKey]wrappedSetting)
	for k, v := range registry {
		origRegistry[k] = v
	}
	return func() {
		registry = origRegistry
	}
}
