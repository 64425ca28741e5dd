// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package intern manages pools of immutable values, such as strings,
// filesystem paths, and byte buffers, holding at most one live canonical
// copy of any given value and handing out cheap reference-counted handles
// to it.
//
// A handle keeps its value alive. Releasing the last handle to a value
// removes the value from its pool; a later lookup for an equal value
// creates a fresh canonical copy with a new identity. Two handles from the
// same pool compare in O(1) by slot identity; handles from different pools
// (including the process-wide default pools) fall back to comparing the
// values themselves.
//
// Pools are safe for concurrent use. Each pool serializes its operations
// on one mutex; independent pools never contend with each other.
package intern

// Value is the constraint on types a pool can intern: immutable values
// with full equality, a hash consistent with that equality, a total order,
// and the ability to copy a borrowed view into an owned canonical form.
//
// The built-in kinds are String, Path, and Buffer.
type Value[T any] interface {
	// EqualValue reports whether the value equals o.
	EqualValue(o T) bool
	// CompareValue orders the value against o, returning -1, 0, or +1.
	// It must report 0 exactly when EqualValue reports true.
	CompareValue(o T) int
	// CloneValue returns an owned copy of the value that shares no
	// storage with it.
	CloneValue() T
	// Sum hashes the value with h. Equal values must hash equal.
	Sum(h Hasher) uint64
}

// Pool is the interface common to the two pool kinds: explicitly
// constructed pools (SharedPool) and process-wide default pools
// (GlobalPool).
type Pool[T Value[T]] interface {
	// Get returns a handle to the pooled value equal to borrowed,
	// copying borrowed into the pool only if no equal value is pooled.
	Get(borrowed T) Pooled[T]
	// GetFromOwned is Get for a value the caller owns and gives up: on a
	// miss it is installed as the canonical copy without another copy
	// being made, and on a hit it is discarded.
	GetFromOwned(owned T) Pooled[T]
	// Len returns the number of values currently pooled.
	Len() int

	storage() *table[T]
}

// Same reports whether a and b are the same pool, that is, whether they
// share one underlying table. Pools of different kinds are never the same
// pool, whatever values they hold.
func Same[T Value[T]](a, b Pool[T]) bool {
	return a.storage() == b.storage()
}
