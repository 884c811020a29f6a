/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lsp provides the lsp command for reslink.
package lsp

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"bennypowers.dev/reslink/config"
	rfs "bennypowers.dev/reslink/fs"
	"bennypowers.dev/reslink/hyperlink"
	"bennypowers.dev/reslink/internal/app"
	"bennypowers.dev/reslink/internal/logger"
	"bennypowers.dev/reslink/internal/version"
	"bennypowers.dev/reslink/lsp"
)

// Cmd is the lsp cobra command.
var Cmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the language server on stdio",
	Long: `Run the reslink language server over stdin and stdout.

The server offers go-to-definition and hover on string literals, and the
workspace command "reslink.open". Settings come from the workspace's
.config/reslink.yaml, overlaid with the client's initializationOptions and
then with flags.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("logfile", "", "Write logs to this file instead of discarding them")
}

func run(cmd *cobra.Command, args []string) error {
	logfile, _ := cmd.Flags().GetString("logfile")

	verbosity := 1
	if viper.GetBool(app.KeyVerbose) {
		verbosity = 2
	}

	if logfile == "" {
		logger.SetOutput(io.Discard)
		commonlog.Configure(0, nil)
	} else {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
		commonlog.Configure(verbosity, &logfile)
	}

	server := lsp.NewServer("reslink", version.Get(), newFactory(rfs.NewOSFileSystem(), viper.GetViper()), rfs.NewOSFileSystem())
	defer server.Close()
	return server.RunStdio()
}

// newFactory builds workspace engines from the workspace config, the
// client's initializationOptions and v, in increasing precedence.
func newFactory(filesystem rfs.FileSystem, v *viper.Viper) lsp.Factory {
	return func(ctx context.Context, ws lsp.Workspace, host *lsp.Host) (*hyperlink.Engine, error) {
		var cfg *config.Config
		if ws.Root != "" {
			found, _, err := config.Find(filesystem, ws.Root)
			if err != nil {
				return nil, err
			}
			cfg = found
		}
		if cfg == nil {
			cfg = config.Default()
		}
		if err := cfg.MergeJSON(ws.Options); err != nil {
			return nil, err
		}
		app.Apply(v, cfg)

		engine, err := app.Build(filesystem, cfg, app.Hosts{
			Chooser: host,
			Opener:  host,
			Status:  host,
		})
		if err != nil {
			return nil, err
		}

		if cfg.Watch {
			if _, err := engine.Classes.Watch(ctx); err != nil {
				logger.Warn("watching class indexes: %v", err)
			}
		}
		logger.Info("workspace %q: strategies %v", ws.Root, engine.Resolver.Strategies())
		return engine.Engine, nil
	}
}
