/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package hyperlink answers the editor's questions about a cursor position:
// whether it is on a resource link, where the link is, what it would open,
// and opening it.
package hyperlink

import (
	"context"
	"fmt"
	"time"

	"bennypowers.dev/reslink/cache"
	"bennypowers.dev/reslink/internal/logger"
	"bennypowers.dev/reslink/literal"
	"bennypowers.dev/reslink/resolver"
	"bennypowers.dev/reslink/token"
)

// Document is a buffer and its identity.
type Document struct {
	// Path is the absolute path of the document.
	Path string

	// Text is the current content.
	Text []byte
}

// Resolver resolves a literal found in the document at origin.
type Resolver interface {
	Resolve(origin string, lit literal.Literal) resolver.Result
}

// Options configures an Engine.
type Options struct {
	Tokenizer literal.Tokenizer
	Resolver  Resolver
	Chooser   Chooser
	Opener    Opener
	Status    Status

	// CacheExpiry defaults to cache.DefaultExpiry.
	CacheExpiry time.Duration

	// SingleSlot keeps one cache entry across all documents.
	SingleSlot bool

	// Clock overrides the cache clock.
	Clock cache.Clock
}

// Engine is the hyperlink provider.
type Engine struct {
	tokenizer literal.Tokenizer
	resolver  Resolver
	chooser   Chooser
	opener    Opener
	status    Status
	requests  *cache.Requests[resolver.Result]
}

// New creates an Engine.
func New(opts Options) *Engine {
	var cacheOpts []cache.Option
	if opts.Clock != nil {
		cacheOpts = append(cacheOpts, cache.WithClock(opts.Clock))
	}
	if opts.SingleSlot {
		cacheOpts = append(cacheOpts, cache.SingleSlot())
	}
	return &Engine{
		tokenizer: opts.Tokenizer,
		resolver:  opts.Resolver,
		chooser:   opts.Chooser,
		opener:    opts.Opener,
		status:    opts.Status,
		requests: cache.New(opts.CacheExpiry, func(r resolver.Result) token.Span {
			return r.Span
		}, cacheOpts...),
	}
}

// Resolve returns the cached or freshly computed result at offset.
func (e *Engine) Resolve(doc Document, offset int) resolver.Result {
	return e.requests.GetOrCompute(doc.Path, offset, func() resolver.Result {
		logger.Debug("resolving %s@%d", doc.Path, offset)
		lit, ok := literal.Extract(e.tokenizer, doc.Text, offset)
		if !ok || e.resolver == nil {
			return resolver.NotFound()
		}
		return e.resolver.Resolve(doc.Path, lit)
	})
}

// IsResolvable reports whether offset is on a literal with candidates.
func (e *Engine) IsResolvable(doc Document, offset int) bool {
	return e.Resolve(doc, offset).Valid()
}

// SpanOf returns the span of the link at offset, or token.NoSpan.
func (e *Engine) SpanOf(doc Document, offset int) token.Span {
	result := e.Resolve(doc, offset)
	if !result.Valid() {
		return token.NoSpan
	}
	return result.Span
}

// Describe returns the tooltip for the link at offset.
func (e *Engine) Describe(doc Document, offset int) (string, bool) {
	result := e.Resolve(doc, offset)
	if !result.Valid() {
		return "", false
	}
	return Describe(result), true
}

// Describe formats the tooltip of a valid result.
func Describe(result resolver.Result) string {
	text := fmt.Sprintf("Open **%s**", result.Target)
	if n := len(result.Files); n > 1 {
		text += fmt.Sprintf(" (%d matches)", n)
	}
	return text
}

// Activate opens the link at offset, asking the user to choose when several
// files match. It reports whether a file was opened.
func (e *Engine) Activate(ctx context.Context, doc Document, offset int) bool {
	result := e.Resolve(doc, offset)
	files := result.Presented()

	switch len(files) {
	case 0:
		if result.HasTarget {
			e.report(fmt.Sprintf("No resource found for %s", result.Target))
		}
		return false
	case 1:
		return e.open(ctx, files[0])
	}

	if e.chooser == nil {
		return false
	}
	choices := make([]Choice, len(files))
	for i, f := range files {
		choices[i] = Choice{File: f, Label: result.Project.Rel(f.Path)}
	}
	chosen, ok := e.chooser.Choose(ctx, ChoosePrompt, choices)
	if !ok || chosen < 0 || chosen >= len(choices) {
		return false
	}
	return e.open(ctx, choices[chosen].File)
}

// Invalidate drops the cached result for a document.
func (e *Engine) Invalidate(path string) {
	e.requests.Invalidate(path)
}

// Clear drops every cached result.
func (e *Engine) Clear() {
	e.requests.Clear()
}

func (e *Engine) open(ctx context.Context, file resolver.File) bool {
	if e.opener == nil {
		return false
	}
	if err := e.opener.Open(ctx, file); err != nil {
		e.report(fmt.Sprintf("Could not open %s: %v", file.Path, err))
		return false
	}
	return true
}

func (e *Engine) report(msg string) {
	if e.status != nil {
		e.status.Report(msg)
	}
}
