// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import "go4.org/mem"

// Borrowed-view lookups: interning when the caller holds raw bytes or a
// mem.RO window rather than the pool's owned kind. The hit path inspects
// the view in place; the miss path copies it exactly once.

// StringFromBytes returns a handle to the pooled string whose bytes equal
// b. On a hit no string is allocated; on a miss b is copied once into the
// pool. b may be reused by the caller afterwards.
func StringFromBytes(p StringPool, b []byte) SharedString {
	t := p.t
	var h SharedString
	t.run(func() {
		k, v := t.lookupOrInsert(
			t.hasher.HashBytes(b),
			func(s String) bool { return string(s) == string(b) },
			func() String { return String(b) },
		)
		h = SharedString{t, k, v}
	})
	return h
}

// StringFromRO is StringFromBytes for a mem.RO view.
func StringFromRO(p StringPool, r mem.RO) SharedString {
	t := p.t
	var h SharedString
	t.run(func() {
		k, v := t.lookupOrInsert(
			t.hasher.HashRO(r),
			func(s String) bool { return r.EqualString(string(s)) },
			func() String { return String(r.StringCopy()) },
		)
		h = SharedString{t, k, v}
	})
	return h
}

// BufferFromRO returns a handle to the pooled buffer whose bytes equal r,
// copying r into the pool only on a miss.
func BufferFromRO(p BufferPool, r mem.RO) SharedBuffer {
	t := p.t
	var h SharedBuffer
	t.run(func() {
		k, v := t.lookupOrInsert(
			t.hasher.HashRO(r),
			func(b Buffer) bool { return r.EqualBytes([]byte(b)) },
			func() Buffer { return mem.Append(nil, r) },
		)
		h = SharedBuffer{t, k, v}
	})
	return h
}
