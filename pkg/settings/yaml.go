// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"fmt"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v2"
)

// ApplyYAML overrides settings from a YAML document. Keys may be written
// either dotted or nested:
//
//	todate.default_timezone: Europe/Paris
//	todate:
//	  format_cache:
//	    size: 64
//
// Unknown keys and invalid values are errors. The overrides are applied in
// key order and the first failure stops the process, leaving the earlier
// overrides in place.
func ApplyYAML(data []byte) error {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "parsing settings")
	}
	values := map[InternalKey]string{}
	if err := flattenYAML("", doc, values); err != nil {
		return err
	}
	keys := make([]InternalKey, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		s, _, ok := Lookup(k)
		if !ok {
			return errors.Newf("unknown setting %q", k)
		}
		if err := s.Set(values[k]); err != nil {
			return err
		}
	}
	return nil
}

// ApplyYAMLFile reads path and applies it with ApplyYAML.
func ApplyYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading settings file")
	}
	return errors.Wrapf(ApplyYAML(data), "%s", path)
}

func flattenYAML(prefix string, doc yaml.MapSlice, out map[InternalKey]string) error {
	for _, item := range doc {
		name := fmt.Sprint(item.Key)
		if prefix != "" {
			name = prefix + "." + name
		}
		switch v := item.Value.(type) {
		case yaml.MapSlice:
			if err := flattenYAML(name, v, out); err != nil {
				return err
			}
		case nil:
			return errors.Newf("setting %q has no value", name)
		case []interface{}:
			return errors.Newf("setting %q cannot be a list", name)
		default:
			out[InternalKey(name)] = fmt.Sprint(v)
		}
	}
	return nil
}
