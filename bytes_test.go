// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"go4.org/mem"
)

func TestStringFromBytes(t *testing.T) {
	c := qt.New(t)
	p := NewStringPool()

	h1 := p.Get("hello")
	defer h1.Release()

	// Hit: the bytes match a pooled string; no new value is installed.
	b := []byte("hello")
	h2 := StringFromBytes(p, b)
	defer h2.Release()
	c.Assert(h2.Equal(h1), qt.IsTrue)
	c.Assert(h2.k == h1.k, qt.IsTrue)
	c.Assert(p.Stats(), qt.Equals, Stats{Size: 1, Hits: 1, Misses: 1})

	// Miss: exactly one copy is made, detached from the caller's bytes.
	b = []byte("goodbye")
	h3 := StringFromBytes(p, b)
	defer h3.Release()
	b[0] = 'X'
	c.Assert(h3.Value(), qt.Equals, String("goodbye"))
	c.Assert(p.Stats(), qt.Equals, Stats{Size: 2, Hits: 1, Misses: 2})
}

func TestStringFromRO(t *testing.T) {
	c := qt.New(t)
	p := NewStringPool()

	big := "header|payload|trailer"
	window := mem.S(big).SliceFrom(7).SliceTo(7) // "payload"

	h1 := StringFromRO(p, window)
	defer h1.Release()
	c.Assert(h1.Value(), qt.Equals, String("payload"))

	// The same window, and the same bytes arriving by other routes, all
	// hit the one slot.
	h2 := StringFromRO(p, mem.B([]byte("payload")))
	h3 := p.Get("payload")
	defer h2.Release()
	defer h3.Release()
	c.Assert(h2.k == h1.k, qt.IsTrue)
	c.Assert(h3.k == h1.k, qt.IsTrue)
	c.Assert(p.Len(), qt.Equals, 1)
}

func TestStringFromROLarge(t *testing.T) {
	c := qt.New(t)
	p := NewStringPool()

	// Longer than writeRO's chunk buffer, so hashing streams.
	long := strings.Repeat("abcdefgh", 64)
	h1 := StringFromRO(p, mem.S(long))
	h2 := p.Get(String(long))
	defer h1.Release()
	defer h2.Release()
	c.Assert(h1.k == h2.k, qt.IsTrue)
}

func TestBufferFromRO(t *testing.T) {
	c := qt.New(t)
	p := NewBufferPool()

	src := []byte("raw bytes here")
	h1 := BufferFromRO(p, mem.B(src))
	defer h1.Release()

	// Miss path copied: mutating the source leaves the pool alone.
	src[0] = 'X'
	c.Assert(string(h1.Value()), qt.Equals, "raw bytes here")

	h2 := BufferFromRO(p, mem.S("raw bytes here"))
	defer h2.Release()
	c.Assert(h2.k == h1.k, qt.IsTrue)
	c.Assert(p.Stats(), qt.Equals, Stats{Size: 1, Hits: 1, Misses: 1})
}

// TestHitPathDoesNotCopy pins the allocation-avoidance contract to the
// pool's own instrumentation: hits never install values, misses install
// exactly one each.
func TestHitPathDoesNotCopy(t *testing.T) {
	c := qt.New(t)
	p := NewStringPool()

	h := p.Get("hot")
	defer h.Release()
	base := p.Stats()

	var hits []SharedString
	for range 100 {
		hits = append(hits, StringFromBytes(p, []byte("hot")))
	}
	for _, hh := range hits {
		hh.Release()
	}

	st := p.Stats()
	c.Assert(st.Misses, qt.Equals, base.Misses)
	c.Assert(st.Hits, qt.Equals, base.Hits+100)
	c.Assert(st.Size, qt.Equals, 1)
}
