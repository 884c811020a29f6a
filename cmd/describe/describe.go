/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package describe provides the describe command for reslink.
package describe

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/internal/app"
)

// Cmd is the describe cobra command.
var Cmd = &cobra.Command{
	Use:   "describe <file> <offset|line:col>",
	Short: "Print the tooltip of the link at a position",
	Long: `Print the tooltip an editor shows for the string literal at a position,
such as "Open **config/settings.xml** (2 matches)". Prints nothing when the
literal links to no file.`,
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
	engine, err := app.ForFile(filesystem, doc.Path, viper.GetViper(), app.Hosts{})
	if err != nil {
		return err
	}

	if text, ok := engine.Describe(doc, offset); ok {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}
