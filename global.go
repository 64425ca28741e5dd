// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import "github.com/go-intern/intern/internal/lazy"

// GlobalPool is a process-wide default pool: a pool kind of its own,
// reachable without explicit construction. The zero value is ready to use;
// storage is created on first use with the default hasher and lives for
// the rest of the process.
//
// A GlobalPool is never the same pool as any SharedPool, and a handle from
// one is never identity-equal to a handle from a SharedPool: across pool
// kinds, handles only ever compare by value.
//
// A GlobalPool must not be copied after first use.
type GlobalPool[T Value[T]] struct {
	t lazy.SyncValue[*table[T]]
}

// Process-wide default pools for the built-in value kinds.
var (
	GlobalStrings GlobalPool[String]
	GlobalPaths   GlobalPool[Path]
	GlobalBuffers GlobalPool[Buffer]
)

func (g *GlobalPool[T]) storage() *table[T] {
	return g.t.Get(func() *table[T] { return newTable[T](0, NewSeededHasher()) })
}

// Get returns a handle to the pooled value equal to borrowed, cloning
// borrowed into the pool only on a miss.
func (g *GlobalPool[T]) Get(borrowed T) Pooled[T] {
	return get(g.storage(), borrowed)
}

// GetFromOwned is Get for a value the caller owns and gives up; see
// SharedPool.GetFromOwned.
func (g *GlobalPool[T]) GetFromOwned(owned T) Pooled[T] {
	return getFromOwned(g.storage(), owned)
}

// Len returns the number of values currently pooled.
func (g *GlobalPool[T]) Len() int {
	return poolLen(g.storage())
}

// Values returns a sorted copy of the pooled values.
func (g *GlobalPool[T]) Values() []T {
	return poolValues(g.storage())
}

// Stats returns point-in-time counters for the pool.
func (g *GlobalPool[T]) Stats() Stats {
	return poolStats(g.storage())
}
