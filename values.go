// Copyright (c) The go-intern Authors
// SPDX-License-Identifier: BSD-3-Clause

package intern

import (
	"bytes"
	"strings"
)

// String is the text value kind.
type String string

func (s String) EqualValue(o String) bool  { return s == o }
func (s String) CompareValue(o String) int { return strings.Compare(string(s), string(o)) }
func (s String) Sum(h Hasher) uint64       { return h.HashString(string(s)) }
func (s String) String() string            { return string(s) }

// CloneValue returns a copy of s sharing no storage with it, so a string
// that aliases a larger buffer (a substring, or an unsafe view over reused
// bytes) does not pin that buffer once pooled.
func (s String) CloneValue() String { return String(strings.Clone(string(s))) }

// Path is the filesystem path value kind. Paths compare by their stored
// bytes: no cleaning or case folding is applied, so "a//b" and "a/b" are
// different values.
type Path string

func (p Path) EqualValue(o Path) bool  { return p == o }
func (p Path) CompareValue(o Path) int { return strings.Compare(string(p), string(o)) }
func (p Path) CloneValue() Path        { return Path(strings.Clone(string(p))) }
func (p Path) Sum(h Hasher) uint64     { return h.HashString(string(p)) }
func (p Path) String() string          { return string(p) }

// Buffer is the byte buffer value kind. A pooled Buffer must be treated as
// immutable; writing through a handle's Value corrupts the pool.
type Buffer []byte

func (b Buffer) EqualValue(o Buffer) bool  { return bytes.Equal(b, o) }
func (b Buffer) CompareValue(o Buffer) int { return bytes.Compare(b, o) }
func (b Buffer) CloneValue() Buffer        { return bytes.Clone(b) }
func (b Buffer) Sum(h Hasher) uint64       { return h.HashBytes(b) }
func (b Buffer) String() string            { return string(b) }

// Typed pools and handles for the built-in kinds.
type (
	// StringPool deduplicates strings; SharedStrings are its handles.
	StringPool   = SharedPool[String]
	SharedString = Pooled[String]

	// PathPool deduplicates filesystem paths; SharedPaths are its handles.
	PathPool   = SharedPool[Path]
	SharedPath = Pooled[Path]

	// BufferPool deduplicates byte buffers; SharedBuffers are its handles.
	BufferPool   = SharedPool[Buffer]
	SharedBuffer = Pooled[Buffer]
)

// NewStringPool returns an empty StringPool with the default hasher.
func NewStringPool() StringPool { return New[String]() }

// NewPathPool returns an empty PathPool with the default hasher.
func NewPathPool() PathPool { return New[Path]() }

// NewBufferPool returns an empty BufferPool with the default hasher.
func NewBufferPool() BufferPool { return New[Buffer]() }
