// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cliflags holds the names, environment variables and help
// texts of the command-line flags.
package cliflags

import (
	"fmt"
	"strings"
)

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// value can be controlled (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns a formatted usage string for the flag, including the
// environment variable when there is one.
func (f FlagInfo) Usage() string {
	s := strings.TrimSpace(f.Description)
	if f.EnvVar != "" {
		s += fmt.Sprintf("\nEnvironment variable: %s", f.EnvVar)
	}
	return s
}

// Flags of the date commands.
var (
	Timezone = FlagInfo{
		Name:        "timezone",
		Shorthand:   "z",
		EnvVar:      "ORADATE_TIMEZONE",
		Description: `Timezone in which parsed dates are interpreted and formatted dates rendered. Defaults to the todate.default_timezone setting.`,
	}

	SettingsFile = FlagInfo{
		Name:        "settings",
		EnvVar:      "ORADATE_SETTINGS",
		Description: `YAML file of setting overrides, for example "todate.format_cache.size: 64".`,
	}

	CacheSize = FlagInfo{
		Name:        "cache-size",
		EnvVar:      "ORADATE_CACHE_SIZE",
		Description: `Number of compiled templates to cache. Overrides todate.format_cache.size.`,
	}

	TableDisplayFormat = FlagInfo{
		Name: "format",
		Description: `
Selects how to display results. Possible values: tsv, csv, table, records, html.
Defaults to table when the output is a terminal, tsv otherwise.`,
	}

	Metrics = FlagInfo{
		Name:        "metrics",
		EnvVar:      "ORADATE_METRICS",
		Description: `Print the collected metrics in Prometheus text format to stderr on exit.`,
	}

	Verbosity = FlagInfo{
		Name:        "verbosity",
		Shorthand:   "v",
		EnvVar:      "ORADATE_VERBOSITY",
		Description: `Log verbosity level. Level 2 logs template compilation and cache evictions.`,
	}

	ShowTokens = FlagInfo{
		Name:        "tokens",
		Description: `Also print the tokens each template is split into.`,
	}

	VersionDeps = FlagInfo{
		Name:        "build-deps",
		Description: `Include the versions of the module dependencies.`,
	}
)
