// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package lazy provides a type for lazily initialized values.
package lazy

import (
	"sync"
	"sync/atomic"
)

// SyncValue is a lazily computed value.
//
// Recursive use of a SyncValue from its own fill function will deadlock.
//
// SyncValue is safe for concurrent use.
type SyncValue[T any] struct {
	once sync.Once
	v    T

	// ok is set after a write to v, so a caller seeing ok can safely
	// read v outside the sync.Once.Do.
	ok atomic.Bool
}

// Set attempts to set z's value to val, and reports whether it succeeded.
// Set only succeeds if neither Get nor Set has been called before.
func (z *SyncValue[T]) Set(val T) bool {
	var wasSet bool
	z.once.Do(func() {
		z.v = val
		z.ok.Store(true) // after write to z.v; see field docs
		wasSet = true
	})
	return wasSet
}

// MustSet sets z's value to val, or panics if z already has a value.
func (z *SyncValue[T]) MustSet(val T) {
	if !z.Set(val) {
		panic("Set after already filled")
	}
}

// Get returns z's value, calling fill to compute it if necessary.
// fill is called at most once.
func (z *SyncValue[T]) Get(fill func() T) T {
	z.once.Do(func() {
		z.v = fill()
		z.ok.Store(true) // after write to z.v; see field docs
	})
	return z.v
}

// Peek returns z's value and a boolean indicating whether the value has
// been set. If a value has not been set, the zero value of T is returned.
//
// Peek is safe to call concurrently with Get/Set, but it's undefined
// whether a value set by a concurrent call will be visible to Peek.
func (z *SyncValue[T]) Peek() (v T, ok bool) {
	if z.ok.Load() {
		return z.v, true
	}
	var zero T
	return zero, false
}
