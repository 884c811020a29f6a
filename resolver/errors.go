/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "errors"

// ErrUnknownStrategy is returned when a strategy name is not recognised.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrNoProject is returned by strategies that need an owning project.
var ErrNoProject = errors.New("no owning project")
