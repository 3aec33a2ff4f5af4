// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package settings holds process-wide typed configuration values. Settings
// are registered at init time with a default and may be overridden from a
// YAML file or from the command line.
package settings

import "github.com/cockroachdb/redact"

// InternalKey is the dotted name a setting is registered under.
type InternalKey string

// SafeValue implements the redact.SafeValue interface.
func (InternalKey) SafeValue() {}

var _ redact.SafeValue = InternalKey("")

// Setting is the interface common to all setting types.
type Setting interface {
	// Key returns the key the setting was registered under.
	Key() InternalKey
	// Typ returns the short type name of the setting.
	Typ() string
	// String returns the current value.
	String() string
	// DefaultString returns the default value.
	DefaultString() string
	// Set parses s and makes it the current value.
	Set(s string) error
}

type setting interface {
	Setting
	setToDefault()
}

type common struct {
	key InternalKey
}

func (c *common) Key() InternalKey {
	return c.key
}
