// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/oradate/pkg/cli/cliflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cliContext holds the configuration of the current invocation. The
// flags write into it directly.
type cliContext struct {
	timezone           string
	settingsFile       string
	cacheSize          int
	tableDisplayFormat tableDisplayFormat
	printMetrics       bool
	verbosity          int
	showTokens         bool
	versionIncludeDeps bool
}

var cliCtx cliContext

// initCLIDefaults resets cliCtx to its defaults. The format depends on
// whether stdout is a terminal.
func initCLIDefaults() {
	cliCtx = cliContext{tableDisplayFormat: tableDisplayTSV}
	if isInteractive {
		cliCtx.tableDisplayFormat = tableDisplayTable
	}
}

// AddPersistentPreRunE add 'fn' as a persistent pre-run function to 'cmd'.
// If the command has an existing pre-run function, it is saved and will be called
// at the beginning of 'fn'.
func AddPersistentPreRunE(cmd *cobra.Command, fn func(*cobra.Command, []string) error) {
	// Save any existing hooks.
	wrapped := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Run the previous hook if it exists.
		if wrapped != nil {
			if err := wrapped(cmd, args); err != nil {
				return err
			}
		}

		// Now we can call the new function.
		return fn(cmd, args)
	}
}

func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if value, set := os.LookupEnv(flagInfo.EnvVar); set {
			if err := f.Set(flagInfo.Name, value); err != nil {
				panic(err)
			}
		}
	}
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, *valPtr, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, *valPtr, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, *valPtr, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

func init() {
	initCLIDefaults()

	pf := oradateCmd.PersistentFlags()
	StringFlag(pf, &cliCtx.timezone, cliflags.Timezone)
	StringFlag(pf, &cliCtx.settingsFile, cliflags.SettingsFile)
	IntFlag(pf, &cliCtx.cacheSize, cliflags.CacheSize)
	VarFlag(pf, &cliCtx.tableDisplayFormat, cliflags.TableDisplayFormat)
	BoolFlag(pf, &cliCtx.printMetrics, cliflags.Metrics)
	IntFlag(pf, &cliCtx.verbosity, cliflags.Verbosity)

	BoolFlag(translateCmd.Flags(), &cliCtx.showTokens, cliflags.ShowTokens)
	BoolFlag(versionCmd.Flags(), &cliCtx.versionIncludeDeps, cliflags.VersionDeps)
}
