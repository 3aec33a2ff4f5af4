// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bufio"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/cli/clierror"
	"github.com/cockroachdb/oradate/pkg/cli/exit"
	"github.com/cockroachdb/oradate/pkg/util"
	"github.com/cockroachdb/oradate/pkg/util/log"
	"github.com/cockroachdb/oradate/pkg/util/timeutil"
	"github.com/cockroachdb/oradate/pkg/util/timeutil/pgdate"
	"github.com/cockroachdb/oradate/pkg/util/todate"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate <template> [<template>...]",
	Short: "translate templates to date patterns",
	Long: `
Compile each TO_DATE template and print the equivalent pattern in
SimpleDateFormat notation. An empty template stands for the default
template "` + todate.DefaultTemplate + `".
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	cols := []string{"template", "pattern"}
	if cliCtx.showTokens {
		cols = append(cols, "tokens")
	}
	rows := make([][]string, 0, len(args))
	for _, tmpl := range args {
		p, err := formatCache.Lookup(ctx, tmpl)
		if err != nil {
			return templateError(err)
		}
		row := []string{tmpl, p.String()}
		if cliCtx.showTokens {
			tokens, err := todate.Tokenize(tmpl)
			if err != nil {
				return errors.NewAssertionErrorWithWrappedErrf(err, "tokenizing compiled template")
			}
			strs := make([]string, len(tokens))
			for i, tok := range tokens {
				strs[i] = tok.String()
			}
			row = append(row, strings.Join(strs, "; "))
		}
		rows = append(rows, row)
	}
	return printQueryOutput(cmd.OutOrStdout(), cols, rows, cliCtx.tableDisplayFormat)
}

var parseCmd = &cobra.Command{
	Use:   "parse <template> [<text>...]",
	Short: "parse dates with a template",
	Long: `
Parse each text with the TO_DATE template and print the resulting instant
in UTC. Texts are read one per line from standard input when none are
given on the command line.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	tmpl := args[0]
	if _, err := formatCache.Lookup(ctx, tmpl); err != nil {
		return templateError(err)
	}
	inputs, err := readInputs(cmd, args[1:])
	if err != nil {
		return err
	}
	tz := todate.DefaultTimezone.Get()

	rows := make([][]string, 0, len(inputs))
	failed := 0
	for _, text := range inputs {
		t, err := todate.ParseWithCache(ctx, formatCache, text, tmpl, tz)
		if err != nil {
			failed++
			log.VEventf(ctx, 1, "parsing %q: %v", text, err)
			rows = append(rows, []string{text, "error: " + err.Error()})
			continue
		}
		rows = append(rows, []string{text, t.Format(time.RFC3339)})
	}
	if err := printQueryOutput(cmd.OutOrStdout(), []string{"input", "timestamp"}, rows, cliCtx.tableDisplayFormat); err != nil {
		return err
	}
	if failed > 0 {
		return clierror.NewErrorWithSeverity(
			errors.Newf("%d of %d input%s could not be parsed", failed, len(inputs), util.Pluralize(int64(len(inputs)))),
			exit.InvalidDate(), log.Severity_INFO)
	}
	return nil
}

var formatCmd = &cobra.Command{
	Use:   "format <template> [<timestamp>...]",
	Short: "format timestamps with a template",
	Long: `
Format each timestamp with the TO_DATE template, in the selected timezone.
Timestamps are written "2006-01-02 15:04:05" or in RFC 3339 notation, and
are read in the selected timezone when they carry no offset. The current
time is formatted when no timestamp is given.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	p, err := formatCache.Lookup(ctx, args[0])
	if err != nil {
		return templateError(err)
	}
	loc, err := todate.LoadLocation(todate.DefaultTimezone.Get())
	if err != nil {
		return clierror.NewError(err, exit.CommandLineFlagError())
	}

	inputs := args[1:]
	if len(inputs) == 0 {
		inputs = []string{timeutil.Now().Format(time.RFC3339Nano)}
	}
	rows := make([][]string, 0, len(inputs))
	for _, in := range inputs {
		t, err := pgdate.ParseTimestamp(loc, in)
		if err != nil {
			return clierror.NewError(err, exit.InvalidDate())
		}
		s, err := p.Format(t.In(loc))
		if err != nil {
			return err
		}
		rows = append(rows, []string{in, s})
	}
	return printQueryOutput(cmd.OutOrStdout(), []string{"timestamp", "formatted"}, rows, cliCtx.tableDisplayFormat)
}

var directivesCmd = &cobra.Command{
	Use:   "directives",
	Short: "list the recognized template directives",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		specs := todate.Directives()
		rows := make([][]string, len(specs))
		for i, d := range specs {
			rows[i] = []string{
				d.Text,
				strconv.FormatBool(d.Suffixable),
				strconv.FormatBool(d.Translatable),
				strconv.FormatBool(d.Disallowed),
			}
		}
		return printQueryOutput(cmd.OutOrStdout(),
			[]string{"directive", "suffixable", "translatable", "disallowed"}, rows, cliCtx.tableDisplayFormat)
	},
}

// templateError attaches the exit code matching a template compilation
// error.
func templateError(err error) error {
	code := exit.UnspecifiedError()
	switch {
	case errors.Is(err, todate.ErrUnimplemented):
		code = exit.UnsupportedTemplate()
	case errors.Is(err, todate.ErrBadFormat):
		code = exit.BadTemplate()
	}
	return clierror.NewError(err, code)
}

// readInputs returns args, or the lines of standard input when args is
// empty.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return lines, nil
}
