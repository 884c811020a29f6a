/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package hyperlink

import (
	"context"

	"bennypowers.dev/reslink/resolver"
)

// ChoosePrompt introduces the candidates when several files match.
const ChoosePrompt = "Multiple files found. Please choose:"

// Choice is one candidate offered to the user.
type Choice struct {
	// File is the candidate.
	File resolver.File

	// Label is the project-relative path shown to the user.
	Label string
}

// Chooser asks the user to pick one of several candidates.
type Chooser interface {
	// Choose returns the index of the chosen candidate, or false when the
	// user cancelled.
	Choose(ctx context.Context, prompt string, choices []Choice) (int, bool)
}

// Opener opens a file in the host.
type Opener interface {
	Open(ctx context.Context, file resolver.File) error
}

// Status reports a transient message to the user.
type Status interface {
	Report(msg string)
}
