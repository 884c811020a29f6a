/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cache provides a short-lived request cache keyed on document path,
// cursor offset and time.
package cache

import (
	"sync"
	"time"

	"bennypowers.dev/reslink/token"
)

// DefaultExpiry is how long a cached result stays fresh.
const DefaultExpiry = 2 * time.Second

// Clock returns the current time.
type Clock func() time.Time

type entry[T any] struct {
	path    string
	offset  int
	updated time.Time
	value   T
}

// Requests caches the last computed value per document.
// A value is reused for a later request on the same document when the offset
// lies within the value's span or equals the previous offset, and the value
// has not expired.
type Requests[T any] struct {
	expiry time.Duration
	spanOf func(T) token.Span
	now    Clock
	single bool

	mu      sync.Mutex
	entries map[string]*entry[T]
	last    *entry[T]
}

// Option configures Requests.
type Option func(*options)

type options struct {
	now    Clock
	single bool
}

// WithClock sets the clock used for expiry.
func WithClock(now Clock) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// SingleSlot keeps only the most recent entry across all documents.
func SingleSlot() Option {
	return func(o *options) {
		o.single = true
	}
}

// New creates a cache. spanOf returns the span of a value.
func New[T any](expiry time.Duration, spanOf func(T) token.Span, opts ...Option) *Requests[T] {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Requests[T]{
		expiry:  expiry,
		spanOf:  spanOf,
		now:     o.now,
		single:  o.single,
		entries: make(map[string]*entry[T]),
	}
}

// GetOrCompute returns the cached value for path and offset, or computes,
// stores and returns a new one. compute runs under the cache lock.
func (r *Requests[T]) GetOrCompute(path string, offset int, compute func() T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e := r.lookup(path); e != nil && r.fresh(e, offset, now) {
		return e.value
	}

	e := &entry[T]{path: path, offset: offset, updated: now, value: compute()}
	if r.single {
		r.last = e
	} else {
		r.entries[path] = e
	}
	return e.value
}

// Invalidate drops the entry for path.
func (r *Requests[T]) Invalidate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, path)
	if r.last != nil && r.last.path == path {
		r.last = nil
	}
}

// Clear drops every entry.
func (r *Requests[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]*entry[T])
	r.last = nil
}

// Expiry returns the configured expiry.
func (r *Requests[T]) Expiry() time.Duration {
	return r.expiry
}

func (r *Requests[T]) lookup(path string) *entry[T] {
	if r.single {
		if r.last != nil && r.last.path == path {
			return r.last
		}
		return nil
	}
	return r.entries[path]
}

func (r *Requests[T]) fresh(e *entry[T], offset int, now time.Time) bool {
	if now.Sub(e.updated) >= r.expiry {
		return false
	}
	if offset == e.offset {
		return true
	}
	return r.spanOf != nil && r.spanOf(e.value).Contains(offset)
}
