// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import (
	"strings"
	"testing"

	"go4.org/mem"
)

// The table compares candidates held as strings, byte slices, and mem.RO
// views against stored values, so every Hasher must hash equal bytes
// equally across all three.
func TestHasherConsistency(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"hello, world",
		strings.Repeat("x", 127),
		strings.Repeat("chunky", 100), // several writeRO chunks
	}
	for name, h := range map[string]Hasher{
		"seeded": NewSeededHasher(),
		"fast":   NewFastHasher(),
	} {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				hs := h.HashString(in)
				if hb := h.HashBytes([]byte(in)); hb != hs {
					t.Errorf("HashBytes(%q) = %#x, HashString = %#x", in, hb, hs)
				}
				if hr := h.HashRO(mem.S(in)); hr != hs {
					t.Errorf("HashRO(%q) = %#x, HashString = %#x", in, hr, hs)
				}
			}
		})
	}
}

func TestHashROWindow(t *testing.T) {
	h := NewSeededHasher()
	big := strings.Repeat("0123456789", 50)
	window := mem.S(big).SliceFrom(100).SliceTo(250)
	if got, want := h.HashRO(window), h.HashString(big[100:350]); got != want {
		t.Errorf("HashRO(window) = %#x, want %#x", got, want)
	}
}

func TestSeededHashersDiffer(t *testing.T) {
	a := NewSeededHasher()
	b := NewSeededHasher()
	inputs := []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}
	for _, in := range inputs {
		if a.HashString(in) != b.HashString(in) {
			return
		}
	}
	t.Errorf("two independently seeded hashers agreed on all %d inputs", len(inputs))
}

func TestFastHasherDeterministic(t *testing.T) {
	a := NewFastHasher()
	b := NewFastHasher()
	for _, in := range []string{"", "x", "hello, world"} {
		if a.HashString(in) != b.HashString(in) {
			t.Errorf("fast hasher not deterministic for %q", in)
		}
	}
}

func TestPoolWithFastHasher(t *testing.T) {
	p := NewWithCapacityAndHasher[String](16, NewFastHasher())
	h1 := p.Get("abc")
	h2 := p.Get("abc")
	defer h1.Release()
	defer h2.Release()
	if !h1.Equal(h2) || p.Len() != 1 {
		t.Errorf("fast-hashed pool failed to deduplicate")
	}
}
