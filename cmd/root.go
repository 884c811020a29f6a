/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for reslink.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/reslink/cmd/describe"
	"bennypowers.dev/reslink/cmd/lsp"
	"bennypowers.dev/reslink/cmd/mcp"
	"bennypowers.dev/reslink/cmd/open"
	"bennypowers.dev/reslink/cmd/resolve"
	"bennypowers.dev/reslink/cmd/roots"
	"bennypowers.dev/reslink/cmd/version"
	"bennypowers.dev/reslink/internal/app"
	"bennypowers.dev/reslink/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "reslink",
	Short: "Resolve resource paths in Java string literals",
	Long: `reslink turns string literals in Java sources into links to the files they name.

Literals are resolved against the current directory, the project's source and
resource roots, the package directory mirrored in sibling roots, fully
qualified class names, the project root and absolute paths.

Settings are read from .config/reslink.yaml (or .yml, .json) in the project or
an ancestor directory. Flags and RESLINK_* environment variables override them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool(app.KeyVerbose))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool(app.KeyPartial, false, "Match filenames containing the literal's last segment")
	flags.Duration(app.KeyExpiry, 0, "How long a resolved link is reused (default 2s)")
	flags.Bool(app.KeySingleSlot, false, "Keep a single cached link across all documents")
	flags.StringSlice(app.KeyStrategies, nil, "Enabled strategies, comma separated (default all)")
	flags.BoolP(app.KeyVerbose, "v", false, "Log cache misses and strategy failures")

	viper.SetEnvPrefix("RESLINK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, key := range []string{app.KeyPartial, app.KeyExpiry, app.KeySingleSlot, app.KeyStrategies, app.KeyVerbose} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(describe.Cmd)
	rootCmd.AddCommand(lsp.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(open.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(roots.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
