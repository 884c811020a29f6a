/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package open provides the open command for reslink.
package open

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/app"
)

// Cmd is the open cobra command.
var Cmd = &cobra.Command{
	Use:   "open <file> <offset|line:col>",
	Short: "Open the file a string literal links to",
	Long: `Open the file the string literal at a position links to.

When several files match, a selection prompt is shown on a terminal; without
a terminal nothing is opened. Files open in $VISUAL, then $EDITOR. When
neither is set, the chosen path is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	doc, err := app.ReadDocument(filesystem, args[0])
	if err != nil {
		return err
	}
	offset, err := app.ParsePosition(doc.Text, args[1])
	if err != nil {
		return err
	}

	engine, err := app.ForFile(filesystem, doc.Path, viper.GetViper(), app.Hosts{
		Chooser: &promptChooser{interactive: interactive(cmd.InOrStdin(), cmd.OutOrStdout())},
		Opener: &editorOpener{
			getenv: os.Getenv,
			stdin:  cmd.InOrStdin(),
			stdout: cmd.OutOrStdout(),
			stderr: cmd.ErrOrStderr(),
		},
		Status: &stderrStatus{w: cmd.ErrOrStderr()},
	})
	if err != nil {
		return err
	}

	engine.Activate(cmd.Context(), doc, offset)
	return nil
}

// interactive reports whether both streams are terminals.
func interactive(streams ...any) bool {
	for _, s := range streams {
		f, ok := s.(interface{ Fd() uintptr })
		if !ok {
			return false
		}
		if fd := f.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}
	return true
}
