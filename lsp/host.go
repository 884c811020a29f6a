/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bennypowers.dev/reslink/hyperlink"
	"bennypowers.dev/reslink/resolver"
)

// ErrNotConnected is returned when the host has no client connection yet.
var ErrNotConnected = errors.New("no client connection")

// Host implements the hyperlink collaborators over window requests to the
// client: showMessageRequest to choose, showDocument to open and showMessage
// for status.
type Host struct {
	mu     sync.RWMutex
	notify glsp.NotifyFunc
	call   glsp.CallFunc
}

// bind records the connection's notify and call functions.
func (h *Host) bind(ctx *glsp.Context) {
	if ctx == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notify = ctx.Notify
	h.call = ctx.Call
}

func (h *Host) funcs() (glsp.NotifyFunc, glsp.CallFunc) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.notify, h.call
}

// Choose implements hyperlink.Chooser.
func (h *Host) Choose(_ context.Context, prompt string, choices []hyperlink.Choice) (int, bool) {
	_, call := h.funcs()
	if call == nil {
		return 0, false
	}

	actions := make([]protocol.MessageActionItem, len(choices))
	for i, c := range choices {
		actions[i] = protocol.MessageActionItem{Title: c.Label}
	}

	var picked *protocol.MessageActionItem
	call("window/showMessageRequest", protocol.ShowMessageRequestParams{
		Type:    protocol.MessageTypeInfo,
		Message: prompt,
		Actions: actions,
	}, &picked)
	if picked == nil {
		return 0, false
	}
	for i, c := range choices {
		if c.Label == picked.Title {
			return i, true
		}
	}
	return 0, false
}

// Open implements hyperlink.Opener.
func (h *Host) Open(_ context.Context, file resolver.File) error {
	_, call := h.funcs()
	if call == nil {
		return ErrNotConnected
	}

	var result protocol.ShowDocumentResult
	call("window/showDocument", protocol.ShowDocumentParams{
		URI:       pathToURI(file.Path),
		External:  &protocol.False,
		TakeFocus: &protocol.True,
	}, &result)
	if !result.Success {
		return fmt.Errorf("client declined to show %s", file.Path)
	}
	return nil
}

// Report implements hyperlink.Status.
func (h *Host) Report(msg string) {
	notify, _ := h.funcs()
	if notify == nil {
		return
	}
	notify("window/showMessage", protocol.ShowMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: msg,
	})
}
