// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"strconv"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// IntSetting is the interface of a setting variable that will be
// updated automatically when the corresponding setting changes.
type IntSetting struct {
	common
	defaultValue int64
	validateFn   func(int64) error
	v            atomic.Int64
}

var _ Setting = &IntSetting{}

// Get retrieves the int value in the setting.
func (i *IntSetting) Get() int64 {
	return i.v.Load()
}

func (i *IntSetting) String() string {
	return strconv.FormatInt(i.Get(), 10)
}

// DefaultString returns the default value for the setting as a string.
func (i *IntSetting) DefaultString() string {
	return strconv.FormatInt(i.defaultValue, 10)
}

// Typ returns the short (1 char) string denoting the type of setting.
func (*IntSetting) Typ() string {
	return "i"
}

// Validate checks that v is an acceptable value.
func (i *IntSetting) Validate(v int64) error {
	if i.validateFn != nil {
		if err := i.validateFn(v); err != nil {
			return errors.Wrapf(err, "invalid value for %s", i.key)
		}
	}
	return nil
}

// Override sets the setting to v after validating it.
func (i *IntSetting) Override(v int64) error {
	if err := i.Validate(v); err != nil {
		return err
	}
	i.v.Store(v)
	return nil
}

// Set parses s as an integer and overrides the setting with it.
func (i *IntSetting) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid value for %s", i.key)
	}
	return i.Override(v)
}

func (i *IntSetting) setToDefault() {
	i.v.Store(i.defaultValue)
}

// RegisterIntSetting defines a new setting with type int with an
// optional validation function.
func RegisterIntSetting(
	key InternalKey, desc string, defaultValue int64, validateFn func(int64) error,
) *IntSetting {
	if validateFn != nil {
		if err := validateFn(defaultValue); err != nil {
			panic(errors.Wrapf(err, "invalid default value for %s", key))
		}
	}
	setting := &IntSetting{
		common:       common{key: key},
		defaultValue: defaultValue,
		validateFn:   validateFn,
	}
	register(key, desc, setting)
	return setting
}

// PositiveInt can be passed to RegisterIntSetting.
func PositiveInt(v int64) error {
	if v < 1 {
		return errors.Errorf("cannot be set to a non-positive value: %d", v)
	}
	return nil
}
