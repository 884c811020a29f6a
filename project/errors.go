/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import "errors"

// ErrNoProject is returned when no project owns a file.
var ErrNoProject = errors.New("no owning project")

// ErrUnknownCategory is returned when a root category name is not recognised.
var ErrUnknownCategory = errors.New("unknown source root category")
