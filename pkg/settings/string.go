// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// StringSetting is the interface of a setting variable that will be
// updated automatically when the corresponding setting changes.
type StringSetting struct {
	common
	defaultValue string
	validateFn   func(string) error
	v            atomic.Value
}

var _ Setting = &StringSetting{}

// Get retrieves the string value in the setting.
func (s *StringSetting) Get() string {
	return s.v.Load().(string)
}

func (s *StringSetting) String() string {
	return s.Get()
}

// DefaultString returns the default value for the setting as a string.
func (s *StringSetting) DefaultString() string {
	return s.defaultValue
}

// Typ returns the short (1 char) string denoting the type of setting.
func (*StringSetting) Typ() string {
	return "s"
}

// Validate checks that v is an acceptable value.
func (s *StringSetting) Validate(v string) error {
	if s.validateFn != nil {
		if err := s.validateFn(v); err != nil {
			return errors.Wrapf(err, "invalid value for %s", s.key)
		}
	}
	return nil
}

// Set validates v and makes it the current value.
func (s *StringSetting) Set(v string) error {
	if err := s.Validate(v); err != nil {
		return err
	}
	s.v.Store(v)
	return nil
}

func (s *StringSetting) setToDefault() {
	s.v.Store(s.defaultValue)
}

// RegisterStringSetting defines a new setting with type string.
func RegisterStringSetting(
	key InternalKey, desc string, defaultValue string, validateFn func(string) error,
) *StringSetting {
	if validateFn != nil {
		if err := validateFn(defaultValue); err != nil {
			panic(errors.Wrapf(err, "invalid default value for %s", key))
		}
	}
	setting := &StringSetting{
		common:       common{key: key},
		defaultValue: defaultValue,
		validateFn:   validateFn,
	}
	register(key, desc, setting)
	return setting
}
