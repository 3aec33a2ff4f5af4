// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/util"
	"github.com/olekukonko/tablewriter"
)

// tableDisplayFormat identifies how results are printed.
type tableDisplayFormat int

const (
	tableDisplayTSV tableDisplayFormat = iota
	tableDisplayCSV
	tableDisplayTable
	tableDisplayRecords
	tableDisplayHTML
	tableDisplayLastFormat
)

var tableDisplayNames = [...]string{
	tableDisplayTSV:     "tsv",
	tableDisplayCSV:     "csv",
	tableDisplayTable:   "table",
	tableDisplayRecords: "records",
	tableDisplayHTML:    "html",
}

// Type implements the pflag.Value interface.
func (f *tableDisplayFormat) Type() string { return "string" }

// String implements the pflag.Value interface.
func (f *tableDisplayFormat) String() string {
	if *f < 0 || *f >= tableDisplayLastFormat {
		return fmt.Sprintf("tableDisplayFormat(%d)", int(*f))
	}
	return tableDisplayNames[*f]
}

// Set implements the pflag.Value interface.
func (f *tableDisplayFormat) Set(s string) error {
	for i, name := range tableDisplayNames {
		if s == name {
			*f = tableDisplayFormat(i)
			return nil
		}
	}
	return errors.Newf("invalid table display format: %s (possible values: %s)",
		s, strings.Join(tableDisplayNames[:], ", "))
}

// printQueryOutput writes rows under the given column names to w in the
// requested format.
func printQueryOutput(
	w io.Writer, cols []string, allRows [][]string, displayFormat tableDisplayFormat,
) error {
	switch displayFormat {
	case tableDisplayTable:
		// Initialize tablewriter and set column names as the header row.
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(cols)
		for _, row := range allRows {
			expanded := make([]string, len(row))
			for i, r := range row {
				expanded[i] = expandTabsAndNewLines(r)
			}
			table.Append(expanded)
		}
		table.Render()
		fmt.Fprintf(w, "(%d row%s)\n", len(allRows), util.Pluralize(int64(len(allRows))))

	case tableDisplayTSV, tableDisplayCSV:
		csvWriter := csv.NewWriter(w)
		if displayFormat == tableDisplayTSV {
			csvWriter.Comma = '\t'
		}
		_ = csvWriter.Write(cols)
		if err := csvWriter.WriteAll(allRows); err != nil {
			return errors.Wrap(err, "writing rows")
		}

	case tableDisplayHTML:
		fmt.Fprint(w, "<table>\n<thead><tr>")
		for _, col := range cols {
			fmt.Fprintf(w, "<th>%s</th>", html.EscapeString(col))
		}
		fmt.Fprint(w, "</tr></thead>\n<tbody>\n")
		for _, row := range allRows {
			fmt.Fprint(w, "<tr>")
			for _, r := range row {
				fmt.Fprintf(w, "<td>%s</td>", strings.ReplaceAll(html.EscapeString(r), "\n", "<br/>"))
			}
			fmt.Fprint(w, "</tr>\n")
		}
		fmt.Fprint(w, "</tbody>\n</table>\n")

	case tableDisplayRecords:
		maxColWidth := 0
		for _, col := range cols {
			if colLen := utf8.RuneCountInString(col); colLen > maxColWidth {
				maxColWidth = colLen
			}
		}
		for i, row := range allRows {
			fmt.Fprintf(w, "-[ RECORD %d ]\n", i+1)
			for j, r := range row {
				for l, line := range strings.Split(r, "\n") {
					colLabel := cols[j]
					if l > 0 {
						colLabel = ""
					}
					fmt.Fprintf(w, "%-*s | %s\n", maxColWidth, colLabel, line)
				}
			}
		}

	default:
		return errors.AssertionFailedf("unknown display format %d", displayFormat)
	}
	return nil
}

// expandTabsAndNewLines makes control characters visible in table cells.
func expandTabsAndNewLines(s string) string {
	var buf strings.Builder
	for _, r := range s {
		switch r {
		case '\t':
			buf.WriteString("\\t")
		case '\n':
			buf.WriteString("\\n")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
