// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import "slices"

// SharedPool is an explicitly constructed pool of values of type T.
//
// A SharedPool value is a small header over shared storage: copying it
// copies shared ownership of the same table, never the table itself, so
// copies may be handed to other goroutines freely. Two SharedPool values
// are the same pool iff they alias the same storage; see Same.
//
// The zero SharedPool is not usable. Use New or NewWithCapacityAndHasher.
type SharedPool[T Value[T]] struct {
	t *table[T]
}

// New returns an empty pool using a fresh randomized default hasher.
func New[T Value[T]]() SharedPool[T] {
	return NewWithCapacityAndHasher[T](0, NewSeededHasher())
}

// NewWithCapacityAndHasher returns an empty pool that can hold capacity
// values without growing, hashing with hasher. The hasher is fixed for the
// pool's lifetime.
func NewWithCapacityAndHasher[T Value[T]](capacity int, hasher Hasher) SharedPool[T] {
	return SharedPool[T]{newTable[T](capacity, hasher)}
}

// Get returns a handle to the pooled value equal to borrowed. If no equal
// value is pooled, borrowed is cloned into the pool; on a hit no copy is
// made, so repeated lookups of hot values cost no allocation.
func (p SharedPool[T]) Get(borrowed T) Pooled[T] {
	return get(p.t, borrowed)
}

// GetFromOwned is Get for a value the caller already owns and gives up: on
// a miss, owned itself becomes the canonical copy with no further
// allocation; on a hit it is discarded. The caller must not use owned
// afterwards.
func (p SharedPool[T]) GetFromOwned(owned T) Pooled[T] {
	return getFromOwned(p.t, owned)
}

// Len returns the number of values currently pooled.
func (p SharedPool[T]) Len() int {
	return poolLen(p.t)
}

// Values returns a sorted copy of the pooled values. The copies do not
// hold references; values released after the snapshot simply vanish from
// the pool, not from the returned slice.
func (p SharedPool[T]) Values() []T {
	return poolValues(p.t)
}

// Stats returns point-in-time counters for the pool.
func (p SharedPool[T]) Stats() Stats {
	return poolStats(p.t)
}

// Equal reports whether p and o are the same pool, that is, alias the same
// storage. Contents play no part: two pools holding equal values are still
// different pools.
func (p SharedPool[T]) Equal(o SharedPool[T]) bool { return p.t == o.t }

func (p SharedPool[T]) storage() *table[T] { return p.t }

// get and friends are the front doors shared by SharedPool and GlobalPool.

func get[T Value[T]](t *table[T], borrowed T) Pooled[T] {
	var h Pooled[T]
	t.run(func() {
		k, v := t.lookupOrInsert(borrowed.Sum(t.hasher), borrowed.EqualValue, borrowed.CloneValue)
		h = Pooled[T]{t, k, v}
	})
	return h
}

func getFromOwned[T Value[T]](t *table[T], owned T) Pooled[T] {
	var h Pooled[T]
	t.run(func() {
		k, v := t.lookupOrInsert(owned.Sum(t.hasher), owned.EqualValue, func() T { return owned })
		h = Pooled[T]{t, k, v}
	})
	return h
}

func poolLen[T Value[T]](t *table[T]) int {
	var n int
	t.run(func() { n = t.slots.Len() })
	return n
}

func poolValues[T Value[T]](t *table[T]) []T {
	var vals []T
	t.run(func() { vals = t.appendValues(vals) })
	slices.SortFunc(vals, func(a, b T) int { return a.CompareValue(b) })
	return vals
}

func poolStats[T Value[T]](t *table[T]) Stats {
	var st Stats
	t.run(func() { st = t.stats() })
	return st
}
