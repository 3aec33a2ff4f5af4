// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cli implements the oradate command-line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/oradate/pkg/cli/clierror"
	"github.com/cockroachdb/oradate/pkg/cli/exit"
	"github.com/cockroachdb/oradate/pkg/settings"
	"github.com/cockroachdb/oradate/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/oradate/pkg/util/log"
	"github.com/cockroachdb/oradate/pkg/util/todate"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// Main is the entry point for the oradate binary.
func Main() {
	if err := Run(os.Args[1:]); err != nil {
		fmt.Fprintln(stderr, formatError(err))
		exit.WithCode(clierror.GetExitCode(err))
	}
	exit.WithCode(exit.Success())
}

// Run executes the command line given by args. The collected metrics are
// printed when --metrics is set, whether or not the command succeeded.
func Run(args []string) error {
	metricsRegistry = nil
	oradateCmd.SetArgs(args)
	err := oradateCmd.Execute()
	if cliCtx.printMetrics && metricsRegistry != nil {
		if dumpErr := dumpMetrics(oradateCmd.ErrOrStderr()); dumpErr != nil {
			err = errors.CombineErrors(err, dumpErr)
		}
	}
	return err
}

// formatError renders err for the terminal. Errors that carry a
// SQLSTATE are shown with their code, detail, hint and position.
func formatError(err error) string {
	if pgerror.HasCandidateCode(err) {
		return pgerror.FullError(err)
	}
	return "ERROR: " + err.Error()
}

// Proxy to allow overrides in tests.
var stderr = log.OrigStderr

// isInteractive indicates whether both stdin and stdout refer to the
// terminal.
var isInteractive = isatty.IsTerminal(os.Stdout.Fd()) &&
	isatty.IsTerminal(os.Stdin.Fd())

var oradateCmd = &cobra.Command{
	Use:   "oradate [command] (flags)",
	Short: "Oracle TO_DATE template tool",
	Long: `
Translate, parse and format dates with Oracle TO_DATE templates.
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupContext,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "output version information",
	Long: `
Output build version information.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 1, 2, ' ', 0)
		info, ok := debug.ReadBuildInfo()
		version := "(devel)"
		if ok && info.Main.Version != "" {
			version = info.Main.Version
		}
		fmt.Fprintf(tw, "Build Tag:\t%s\n", version)
		fmt.Fprintf(tw, "Platform:\t%s %s/%s\n", runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(tw, "Go Version:\t%s\n", runtime.Version())
		if cliCtx.versionIncludeDeps && ok {
			fmt.Fprintf(tw, "Build Deps:\n")
			for _, dep := range info.Deps {
				fmt.Fprintf(tw, "\t%s\t%s\n", dep.Path, dep.Version)
			}
		}
		return tw.Flush()
	},
}

// The state set up by setupContext for the date commands.
var (
	metricsRegistry *prometheus.Registry
	formatCache     *todate.FormatCache
)

// setupContext applies the settings file and the flags, then creates the
// metrics and the template cache.
func setupContext(cmd *cobra.Command, _ []string) error {
	log.SetVerbosity(int32(cliCtx.verbosity))
	if cliCtx.settingsFile != "" {
		if err := settings.ApplyYAMLFile(cliCtx.settingsFile); err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
	}
	if cliCtx.cacheSize != 0 {
		if err := todate.FormatCacheSize.Override(int64(cliCtx.cacheSize)); err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
	}
	if cliCtx.timezone != "" {
		if err := todate.DefaultTimezone.Set(cliCtx.timezone); err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
	}

	metricsRegistry = prometheus.NewRegistry()
	metrics := todate.NewMetrics()
	if err := metrics.Register(metricsRegistry); err != nil {
		return errors.NewAssertionErrorWithWrappedErrf(err, "registering metrics")
	}
	var err error
	formatCache, err = todate.NewDefaultFormatCache(metrics)
	if err != nil {
		return clierror.NewError(err, exit.CommandLineFlagError())
	}
	ctx := cmdContext(cmd)
	log.VEventf(ctx, 1, "template cache size %d, timezone %s",
		todate.FormatCacheSize.Get(), todate.DefaultTimezone.Get())
	return nil
}

// cmdContext returns the context of cmd annotated with the command name.
func cmdContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logtags.AddTag(ctx, "cmd", cmd.Name())
}

// dumpMetrics writes the collected metrics in Prometheus text format.
func dumpMetrics(w io.Writer) error {
	families, err := metricsRegistry.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "encoding metrics")
		}
	}
	return nil
}

func init() {
	cobra.EnableCommandSorting = false
	oradateCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierror.NewError(err, exit.CommandLineFlagError())
	})

	oradateCmd.AddCommand(
		translateCmd,
		parseCmd,
		formatCmd,
		directivesCmd,
		versionCmd,
	)
}
