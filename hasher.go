// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import (
	"hash/maphash"
	"io"

	"github.com/cespare/xxhash/v2"
	"go4.org/mem"
)

// Hasher computes 64-bit hashes of interned values. The three methods must
// agree: a string, a byte slice, and a mem.RO holding the same bytes must
// hash to the same value. A Hasher must be deterministic for the lifetime
// of the tables using it.
//
// Each pool gets its own Hasher at construction time; there is no per-call
// choice of hash.
type Hasher interface {
	HashString(s string) uint64
	HashBytes(b []byte) uint64
	HashRO(r mem.RO) uint64
}

// NewSeededHasher returns the default Hasher. Every call draws a fresh
// random seed, so separate pools hash differently and an attacker cannot
// predict bucket placement (hash-flooding resistance).
func NewSeededHasher() Hasher {
	return seededHasher{maphash.MakeSeed()}
}

type seededHasher struct {
	seed maphash.Seed
}

func (h seededHasher) HashString(s string) uint64 { return maphash.String(h.seed, s) }
func (h seededHasher) HashBytes(b []byte) uint64  { return maphash.Bytes(h.seed, b) }

func (h seededHasher) HashRO(r mem.RO) uint64 {
	var mh maphash.Hash
	mh.SetSeed(h.seed)
	writeRO(&mh, r)
	return mh.Sum64()
}

// NewFastHasher returns an xxhash-backed Hasher: faster than the seeded
// default, but unseeded and therefore predictable. Opt in only for
// trusted, non-adversarial inputs.
func NewFastHasher() Hasher {
	return fastHasher{}
}

type fastHasher struct{}

func (fastHasher) HashString(s string) uint64 { return xxhash.Sum64String(s) }
func (fastHasher) HashBytes(b []byte) uint64  { return xxhash.Sum64(b) }

func (fastHasher) HashRO(r mem.RO) uint64 {
	var d xxhash.Digest
	d.Reset()
	writeRO(&d, r)
	return d.Sum64()
}

// writeRO feeds r to w in bounded chunks through a stack buffer, so
// hashing a large view does not allocate.
func writeRO[W io.Writer](w W, r mem.RO) {
	var buf [128]byte
	for r.Len() > 0 {
		chunk := r
		if chunk.Len() > len(buf) {
			chunk = chunk.SliceTo(len(buf))
		}
		w.Write(mem.Append(buf[:0], chunk))
		r = r.SliceFrom(chunk.Len())
	}
}
