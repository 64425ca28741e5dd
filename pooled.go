// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import "fmt"

// Pooled is a handle to one canonical value in one pool. It is a small
// value type; passing it around copies the handle, not the value, and does
// not change the value's reference count (use Clone for that).
//
// A handle obtained from Get, GetFromOwned, or Clone holds one reference
// to its value and must be balanced by exactly one Release. While any
// handle to a value exists, the value stays pooled, immutable, and stable
// in identity.
//
// The zero Pooled is not a valid handle.
type Pooled[T Value[T]] struct {
	t *table[T]
	k key[T]
	v T // copy of the canonical value's header; reads take no lock
}

// Value returns the canonical value. The result must not be used after the
// last handle to it has been released. Value takes no lock.
func (p Pooled[T]) Value() T { return p.v }

// Clone returns a new handle to the same canonical value, incrementing its
// reference count. It briefly locks the owning pool.
func (p Pooled[T]) Clone() Pooled[T] {
	p.t.run(func() { p.t.retain(p.k) })
	return p
}

// Release drops this handle's reference. Releasing the last handle to a
// value removes it from the pool; a later lookup for an equal value will
// build a fresh canonical copy with a new identity. Using a handle after
// releasing it is a bug.
func (p Pooled[T]) Release() {
	p.t.run(func() { p.t.release(p.k) })
}

// SamePool reports whether p and o were handed out by the same pool.
func (p Pooled[T]) SamePool(o Pooled[T]) bool { return p.t == o.t }

// Equal reports whether p and o hold equal values. Handles from the same
// pool compare by slot identity without looking at the values: the pool
// never holds two equal values, so same slot and equal value coincide.
// Handles from different pools (or different pool kinds) share no slots,
// so they fall back to comparing the values in full.
func (p Pooled[T]) Equal(o Pooled[T]) bool {
	if p.t == o.t {
		return p.k == o.k
	}
	return p.v.EqualValue(o.v)
}

// Compare orders p and o by their values, returning -1, 0, or +1. Like
// Equal, two handles to one slot are recognized without a value
// comparison.
func (p Pooled[T]) Compare(o Pooled[T]) int {
	if p.t == o.t && p.k == o.k {
		return 0
	}
	return p.v.CompareValue(o.v)
}

// Sum hashes the handle's value with h. Handles that are Equal hash the
// same, whichever pools they came from.
func (p Pooled[T]) Sum(h Hasher) uint64 { return p.v.Sum(h) }

func (p Pooled[T]) String() string { return fmt.Sprintf("%v", p.v) }
