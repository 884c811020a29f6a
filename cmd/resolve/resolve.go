/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for reslink.
package resolve

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/app"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <file> <offset|line:col>",
	Short: "List the files a string literal links to",
	Long: `Resolve the string literal at a position and list every matching file.

The position is a byte offset or a 1-based line and column.

Output Formats:
  table  target, span and the candidates relative to the project (default)
  json   {target, span, files}
  paths  one absolute path per line

Examples:
  reslink resolve src/main/java/com/foo/Service.java 4:36
  reslink resolve --format json src/main/java/com/foo/Service.java 118`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, paths")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	doc, err := app.ReadDocument(filesystem, args[0])
	if err != nil {
		return err
	}
	offset, err := app.ParsePosition(doc.Text, args[1])
	if err != nil {
		return err
	}
	engine, err := app.ForFile(filesystem, doc.Path, viper.GetViper(), app.Hosts{})
	if err != nil {
		return err
	}

	report := app.NewReport(engine.Resolve(doc, offset))
	return output(cmd.OutOrStdout(), report, format)
}

func output(w io.Writer, report app.Report, format string) error {
	switch format {
	case "json":
		return outputJSON(w, report)
	case "paths":
		return outputPaths(w, report)
	case "table", "":
		return outputTable(w, report)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func outputTable(w io.Writer, report app.Report) error {
	if report.Span == nil {
		_, err := fmt.Fprintln(w, "No string literal at position")
		return err
	}
	fmt.Fprintf(w, "%-8s %s\n", "target", report.Target)
	fmt.Fprintf(w, "%-8s %d-%d\n", "span", report.Span.Start, report.Span.End)
	if len(report.Files) == 0 {
		_, err := fmt.Fprintf(w, "No resource found for %s\n", report.Target)
		return err
	}
	for i, f := range report.Files {
		fmt.Fprintf(w, "%-8d %s\n", i+1, f.Relative)
	}
	return nil
}

func outputJSON(w io.Writer, report app.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func outputPaths(w io.Writer, report app.Report) error {
	for _, f := range report.Files {
		if _, err := fmt.Fprintln(w, f.Path); err != nil {
			return err
		}
	}
	return nil
}
