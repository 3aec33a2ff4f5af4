// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var strFooA = RegisterStringSetting("str.foo", "", "", nil)
var strBarA = RegisterStringSetting("str.bar", "", "bar", func(s string) error {
	if s == "bad" {
		return os.ErrInvalid
	}
	return nil
})
var i1A = RegisterIntSetting("i.1", "", 0, nil)
var i2A = RegisterIntSetting("i.2", "", 5, PositiveInt)

func init() {
	RegisterStringSetting("str.hidden", "", "", nil)
	Hide("str.hidden")
}

func TestCache(t *testing.T) {
	defer ResetToDefaults()

	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, "", strFooA.Get())
		require.Equal(t, "bar", strBarA.Get())
		require.Equal(t, int64(0), i1A.Get())
		require.Equal(t, int64(5), i2A.Get())
		require.Equal(t, "5", i2A.DefaultString())
	})

	t.Run("lookup", func(t *testing.T) {
		s, _, ok := Lookup("i.1")
		require.True(t, ok)
		require.Equal(t, Setting(i1A), s)
		require.Equal(t, "i", s.Typ())
		s, _, ok = Lookup("str.bar")
		require.True(t, ok)
		require.Equal(t, "s", s.Typ())
		_, _, ok = Lookup("dne")
		require.False(t, ok)
		// Hidden settings can still be looked up.
		_, _, ok = Lookup("str.hidden")
		require.True(t, ok)
	})

	t.Run("keys", func(t *testing.T) {
		require.Equal(t, []InternalKey{"i.1", "i.2", "str.bar", "str.foo"}, Keys())
	})

	t.Run("set", func(t *testing.T) {
		require.NoError(t, i2A.Set("12"))
		require.Equal(t, int64(12), i2A.Get())
		require.Equal(t, "12", i2A.String())

		require.EqualError(t, i2A.Set("0"),
			"invalid value for i.2: cannot be set to a non-positive value: 0")
		require.Equal(t, int64(12), i2A.Get())
		require.Error(t, i2A.Set("twelve"))

		require.NoError(t, strBarA.Set("baz"))
		require.Equal(t, "baz", strBarA.Get())
		require.Error(t, strBarA.Set("bad"))
		require.Equal(t, "baz", strBarA.String())
	})

	t.Run("reset", func(t *testing.T) {
		require.NoError(t, i1A.Override(3))
		ResetToDefaults()
		require.Equal(t, int64(0), i1A.Get())
		require.Equal(t, "bar", strBarA.Get())
	})
}

func TestRegisterDuplicate(t *testing.T) {
	defer TestingSaveRegistry()()
	require.Panics(t, func() { RegisterIntSetting("i.1", "", 0, nil) })
	require.Panics(t, func() { RegisterIntSetting("i.neg", "", -1, PositiveInt) })
}

func TestApplyYAML(t *testing.T) {
	defer ResetToDefaults()

	require.NoError(t, ApplyYAML([]byte(`
i:
  1: 7
  2: 9
str.foo: hello world
`)))
	require.Equal(t, int64(7), i1A.Get())
	require.Equal(t, int64(9), i2A.Get())
	require.Equal(t, "hello world", strFooA.Get())

	require.EqualError(t, ApplyYAML([]byte("nope: 1\n")), `unknown setting "nope"`)
	require.EqualError(t, ApplyYAML([]byte("i.2: -3\n")),
		"invalid value for i.2: cannot be set to a non-positive value: -3")
	require.EqualError(t, ApplyYAML([]byte("str.foo:\n")), `setting "str.foo" has no value`)
	require.EqualError(t, ApplyYAML([]byte("str.foo: [a, b]\n")), `setting "str.foo" cannot be a list`)
	require.Error(t, ApplyYAML([]byte("str.foo: [\n")))
}

func TestApplyYAMLFile(t *testing.T) {
	defer ResetToDefaults()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("str.bar: qux\n"), 0644))
	require.NoError(t, ApplyYAMLFile(path))
	require.Equal(t, "qux", strBarA.Get())

	require.Error(t, ApplyYAMLFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
