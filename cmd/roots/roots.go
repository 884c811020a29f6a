/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package roots provides the roots command for reslink.
package roots

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/app"
	"bennypowers.dev/reslink/project"
)

// Cmd is the roots cobra command.
var Cmd = &cobra.Command{
	Use:   "roots [file]",
	Short: "List the source roots of a project",
	Long: `List the source and resource roots of the project owning a file or
directory (default: the current directory), in search order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", target, err)
	}

	filesystem := rfs.NewOSFileSystem()
	dir := abs
	if !rfs.IsDir(filesystem, dir) {
		dir = filepath.Dir(dir)
	}
	cfg, err := app.LoadConfig(filesystem, dir, viper.GetViper())
	if err != nil {
		return err
	}
	engine, err := app.Build(filesystem, cfg, app.Hosts{})
	if err != nil {
		return err
	}

	p, err := engine.Projects.Owner(abs)
	if err != nil {
		return err
	}
	return output(cmd.OutOrStdout(), p, format)
}

func output(w io.Writer, p *project.Project, format string) error {
	switch format {
	case "json":
		return outputJSON(w, p)
	case "table", "":
		return outputTable(w, p)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func outputTable(w io.Writer, p *project.Project) error {
	fmt.Fprintf(w, "%s\n", p.Dir)
	for _, root := range p.Roots {
		fmt.Fprintf(w, "  %-14s %s\n", root.Category, p.Rel(root.Path))
	}
	return nil
}

func outputJSON(w io.Writer, p *project.Project) error {
	type rootOutput struct {
		Path     string           `json:"path"`
		Relative string           `json:"relative"`
		Category project.Category `json:"category"`
	}
	type projectOutput struct {
		Dir   string       `json:"dir"`
		Roots []rootOutput `json:"roots"`
	}

	out := projectOutput{Dir: p.Dir, Roots: make([]rootOutput, 0, len(p.Roots))}
	for _, root := range p.Roots {
		out.Roots = append(out.Roots, rootOutput{
			Path:     root.Path,
			Relative: p.Rel(root.Path),
			Category: root.Category,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
