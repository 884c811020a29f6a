/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package open

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/huh"

	"bennypowers.dev/reslink/hyperlink"
	"bennypowers.dev/reslink/internal/logger"
	"bennypowers.dev/reslink/resolver"
)

// promptChooser asks on the terminal with a select prompt.
type promptChooser struct {
	interactive bool
	run         func(ctx context.Context, form *huh.Form) error
}

func (c *promptChooser) Choose(ctx context.Context, prompt string, choices []hyperlink.Choice) (int, bool) {
	if !c.interactive || len(choices) == 0 {
		return 0, false
	}

	options := make([]huh.Option[int], len(choices))
	for i, choice := range choices {
		options[i] = huh.NewOption(choice.Label, i)
	}

	chosen := 0
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(prompt).
			Options(options...).
			Value(&chosen),
	))

	run := c.run
	if run == nil {
		run = func(ctx context.Context, form *huh.Form) error {
			return form.RunWithContext(ctx)
		}
	}
	if err := run(ctx, form); err != nil {
		if !errors.Is(err, huh.ErrUserAborted) {
			logger.Warn("selection prompt failed: %v", err)
		}
		return 0, false
	}
	return chosen, true
}

// editorOpener opens files in $VISUAL or $EDITOR, or prints the path.
type editorOpener struct {
	getenv func(string) string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (o *editorOpener) Open(ctx context.Context, file resolver.File) error {
	editor := o.editor()
	if len(editor) == 0 {
		_, err := fmt.Fprintln(o.stdout, file.Path)
		return err
	}

	args := append(editor[1:], file.Path)
	c := exec.CommandContext(ctx, editor[0], args...)
	c.Stdin = o.stdin
	c.Stdout = o.stdout
	c.Stderr = o.stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", editor[0], err)
	}
	return nil
}

func (o *editorOpener) editor() []string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(o.getenv(key)); len(fields) > 0 {
			return fields
		}
	}
	return nil
}

// stderrStatus writes status messages as lines.
type stderrStatus struct {
	w io.Writer
}

func (s *stderrStatus) Report(msg string) {
	fmt.Fprintln(s.w, msg)
}
