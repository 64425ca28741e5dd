// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import (
	"errors"
	"slices"
	"sync"

	"github.com/go-intern/intern/internal/arena"
)

// ErrPoisoned is the value panicked with by every operation on a pool
// whose table was left in an unknown state by a failure during an earlier
// mutation. A poisoned pool cannot be repaired; discard it and build a
// fresh one.
var ErrPoisoned = errors.New("intern: pool poisoned by a failure during an earlier mutation")

// slot pairs one canonical value with its live reference count. A slot
// exists in its table iff refs >= 1.
type slot[T Value[T]] struct {
	v    T
	refs int
}

// key names one slot in one table. Key equality is slot identity.
type key[T Value[T]] = arena.Key[slot[T]]

// table is the canonical store shared by every front-end and handle that
// aliases one pool: a dense arena of slots plus hash buckets over them.
// It holds no two slots with equal values.
//
// All access goes through run, which owns the lock and the poisoning
// discipline. The methods below must only be called from inside run.
type table[T Value[T]] struct {
	mu       sync.Mutex
	poisoned bool

	hasher  Hasher
	slots   arena.Arena[slot[T]]
	buckets map[uint64][]key[T] // hash → slots whose values have that hash

	hits   uint64 // lookups satisfied by an existing slot
	misses uint64 // lookups that inserted a new slot
}

func newTable[T Value[T]](capacity int, hasher Hasher) *table[T] {
	t := &table[T]{
		hasher:  hasher,
		buckets: make(map[uint64][]key[T], capacity),
	}
	t.slots.Grow(capacity)
	return t
}

// run executes f with the table locked. If f panics, the table is left
// marked poisoned: its invariants can no longer be trusted, so every
// subsequent run panics with ErrPoisoned.
func (t *table[T]) run(f func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.poisoned {
		panic(ErrPoisoned)
	}
	t.poisoned = true
	f()
	t.poisoned = false
}

// lookupOrInsert returns the slot whose value equals the candidate
// described by hash and eq, bumping its reference count, or inserts the
// value built by mk as a new slot with count 1. The hit path never calls
// mk, so a borrowed candidate is only copied once it is known to be new.
func (t *table[T]) lookupOrInsert(hash uint64, eq func(T) bool, mk func() T) (key[T], T) {
	for _, k := range t.buckets[hash] {
		s := t.slots.Get(k)
		if eq(s.v) {
			s.refs++
			t.hits++
			return k, s.v
		}
	}
	v := mk()
	k := t.slots.Add(slot[T]{v: v, refs: 1})
	t.buckets[hash] = append(t.buckets[hash], k)
	t.misses++
	return k, v
}

// retain bumps the reference count of the slot named by k.
func (t *table[T]) retain(k key[T]) {
	s := t.slots.Get(k)
	if s == nil {
		panic("intern: clone of released handle")
	}
	s.refs++
}

// release drops one reference to the slot named by k. When the count
// reaches zero the slot is unlinked from its bucket and freed within the
// same critical section, so no lookup can observe a dead slot.
func (t *table[T]) release(k key[T]) {
	s := t.slots.Get(k)
	if s == nil {
		panic("intern: release of released handle")
	}
	if s.refs--; s.refs > 0 {
		return
	}
	hash := s.v.Sum(t.hasher)
	chain := t.buckets[hash]
	i := slices.Index(chain, k)
	if chain = slices.Delete(chain, i, i+1); len(chain) == 0 {
		delete(t.buckets, hash)
	} else {
		t.buckets[hash] = chain
	}
	t.slots.Delete(k)
}

func (t *table[T]) appendValues(dst []T) []T {
	dst = slices.Grow(dst, t.slots.Len())
	t.slots.Visit(func(s *slot[T]) {
		dst = append(dst, s.v)
	})
	return dst
}

// Stats are point-in-time counters for one pool.
type Stats struct {
	Size   int    // values currently pooled
	Hits   uint64 // lookups that found an existing value
	Misses uint64 // lookups that installed a new value
}

func (t *table[T]) stats() Stats {
	return Stats{
		Size:   t.slots.Len(),
		Hits:   t.hits,
		Misses: t.misses,
	}
}
