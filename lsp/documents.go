/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	"fmt"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// documents holds the text of open documents.
type documents struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri][]byte
}

func newDocuments() *documents {
	return &documents{docs: make(map[protocol.DocumentUri][]byte)}
}

func (d *documents) open(uri protocol.DocumentUri, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[uri] = []byte(text)
}

func (d *documents) close(uri protocol.DocumentUri) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}

func (d *documents) get(uri protocol.DocumentUri) ([]byte, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	text, ok := d.docs[uri]
	return text, ok
}

// apply applies full and incremental content changes in order.
func (d *documents) apply(uri protocol.DocumentUri, changes []any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	text, ok := d.docs[uri]
	if !ok {
		return fmt.Errorf("no document for %s", uri)
	}
	current := string(text)
	for _, raw := range changes {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			current = change.Text
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				current = change.Text
				continue
			}
			start, end := change.Range.IndexesIn(current)
			current = current[:start] + change.Text + current[end:]
		default:
			return fmt.Errorf("unexpected change event type %T", raw)
		}
	}
	d.docs[uri] = []byte(current)
	return nil
}
