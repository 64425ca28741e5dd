// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arena contains a compact, slice-backed store of values addressed
// by stable keys. Deleting a value moves the last element into its place,
// so the backing slice stays dense; keys remain valid across such moves.
//
// An Arena is not safe for concurrent use; callers provide their own
// locking.
package arena

import "fmt"

// consistencyCheck enables additional runtime checks to ensure that the
// arena is well-formed; it is disabled by default, and can be enabled
// during tests to catch additional bugs.
const consistencyCheck = false

// Arena is a dense store of values of type V.
type Arena[V any] struct {
	s []valAndIndex[V]
}

type valAndIndex[V any] struct {
	// val is the stored value.
	val V

	// index is the current location of this value in Arena.s. It gets set
	// to -1 when the value is deleted from the arena.
	index *int
}

// Key is an opaque, comparable key naming one value in an Arena. Two Keys
// are equal iff they were returned by the same Add call; equality survives
// the internal moves done by Delete.
//
// The zero Key names no value.
type Key[V any] struct {
	idx *int // pointer to index; -1 if deleted
}

// Valid reports whether k still names a value: it was returned by Add and
// the value has not been deleted.
func (k Key[V]) Valid() bool { return k.idx != nil && *k.idx >= 0 }

// Len returns the number of values in the arena.
func (a *Arena[V]) Len() int {
	return len(a.s)
}

// Grow ensures the arena can hold n more values without reallocating.
func (a *Arena[V]) Grow(n int) {
	if need := len(a.s) + n; need > cap(a.s) {
		s := make([]valAndIndex[V], len(a.s), need)
		copy(s, a.s)
		a.s = s
	}
}

// Add stores v and returns its key.
func (a *Arena[V]) Add(v V) Key[V] {
	// Store the index in a pointer, so that we can hand it to the key and
	// keep it in the valAndIndex, updating both on moves.
	idx := new(int)
	*idx = len(a.s)
	a.s = append(a.s, valAndIndex[V]{
		val:   v,
		index: idx,
	})
	return Key[V]{idx}
}

// Get returns a pointer to the value named by k, or nil if the value has
// been deleted. The pointer is valid only until the next Add or Delete.
func (a *Arena[V]) Get(k Key[V]) *V {
	a.checkKey(k)
	idx := *k.idx
	if idx < 0 {
		return nil
	}
	a.checkIndex(idx)
	return &a.s[idx].val
}

// Delete removes the value named by k.
//
// It reports whether a value was deleted; it returns false if the value
// was already deleted.
func (a *Arena[V]) Delete(k Key[V]) bool {
	a.checkKey(k)
	idx := *k.idx
	if idx < 0 {
		return false
	}
	a.deleteIndex(idx)
	return true
}

func (a *Arena[V]) deleteIndex(idx int) {
	// Mark the value as deleted.
	a.checkIndex(idx)
	*(a.s[idx].index) = -1

	// If this isn't the last element in the slice, overwrite the element
	// at this index with the last element and repoint its key.
	lastIdx := len(a.s) - 1

	if idx < lastIdx {
		last := a.s[lastIdx]
		a.checkElem(lastIdx, last)
		*last.index = idx
		a.s[idx] = last
	}

	// Zero out last element (for GC) and truncate slice.
	a.s[lastIdx] = valAndIndex[V]{}
	a.s = a.s[:lastIdx]
}

// Visit calls fn for each value in the arena, in unspecified order. fn must
// not add to or delete from the arena.
func (a *Arena[V]) Visit(fn func(v *V)) {
	for i := range a.s {
		if consistencyCheck && a.s[i].index == nil {
			panic(fmt.Sprintf("arena: index is nil at %d", i))
		}
		fn(&a.s[i].val)
	}
}

// checkIndex verifies that the provided index is within the bounds of the
// arena's slice, and that the corresponding element has a non-nil index
// pointer, and panics if not.
func (a *Arena[V]) checkIndex(idx int) {
	if !consistencyCheck {
		return
	}

	if idx >= len(a.s) {
		panic(fmt.Sprintf("arena: index %d out of range (len %d)", idx, len(a.s)))
	}
	if a.s[idx].index == nil {
		panic(fmt.Sprintf("arena: index is nil at %d", idx))
	}
}

// checkKey verifies that the provided key is not the zero Key, and panics
// if it is.
func (a *Arena[V]) checkKey(k Key[V]) {
	if !consistencyCheck {
		return
	}

	if k.idx == nil {
		panic("arena: zero key")
	}
}

// checkElem verifies that the provided valAndIndex has a non-nil index, and
// that the stored index matches the expected position within the slice.
func (a *Arena[V]) checkElem(idx int, e valAndIndex[V]) {
	if !consistencyCheck {
		return
	}

	if e.index == nil {
		panic("arena: index is nil")
	}
	if got := *e.index; got != idx {
		panic(fmt.Sprintf("arena: index is incorrect: want %d, got %d", idx, got))
	}
}
