// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package strchunk

import (
	"fmt"
	"unicode/utf8"
)

// Chunk is an immutable, cheaply shared view over a contiguous UTF-8
// byte region.
//
// A Chunk wraps a Go string: the backing bytes are immutable, any number
// of Chunks (and plain strings) may share them, slicing never copies, and
// storage is released when the last holder is collected. Because the view
// is immutable it may be read from any number of goroutines concurrently.
//
// The invariant a Chunk carries on top of a plain string is that its
// content is valid UTF-8 — never an incomplete trailing sequence, never
// an invalid byte. Every constructor either validates its input
// (FromBytes), receives input that is valid by construction (FromString
// on source-code literals, FromRunes, Builder.Freeze, Extract), or
// produces a sub-view cut on code-point boundaries.
//
// The zero value is the empty Chunk. Chunk is a comparable value type:
// == compares decoded text, and Chunks can be used directly as map keys
// with content-based hashing.
type Chunk struct {
	s string
}

// FromString returns a Chunk viewing s. No allocation and no copy take
// place; the Chunk shares s's backing bytes.
//
// s is assumed to be valid UTF-8, which holds for every string built by
// ordinary Go means (literals, string(runes), concatenation of valid
// strings). For byte-derived data of unknown provenance, use FromBytes.
func FromString(s string) Chunk {
	return Chunk{s: s}
}

// FromBytes validates b as UTF-8 and returns a Chunk over a copy of it.
// The copy keeps the caller free to reuse b. If b is not entirely valid
// UTF-8, an *ExtractError describing the first invalid sequence is
// returned and the Chunk is empty.
func FromBytes(b []byte) (Chunk, error) {
	validUpTo, invalidLen := validUTF8(b)
	if invalidLen != 0 {
		return Chunk{}, &ExtractError{
			Extracted: Chunk{s: string(b[:validUpTo])},
			ErrorLen:  invalidLength(invalidLen, len(b)-validUpTo),
		}
	}
	return Chunk{s: string(b)}, nil
}

// FromRunes encodes the given code points into a new Chunk. Invalid code
// points (surrogates, values above U+10FFFF) are encoded as U+FFFD, as
// everywhere in Go.
func FromRunes(rs []rune) Chunk {
	return Chunk{s: string(rs)}
}

// Len returns the length of the view in bytes.
func (c Chunk) Len() int {
	return len(c.s)
}

// IsEmpty reports whether the view is empty.
func (c Chunk) IsEmpty() bool {
	return len(c.s) == 0
}

// String returns the decoded text. Zero-copy: the returned string shares
// the Chunk's backing bytes.
func (c Chunk) String() string {
	return c.s
}

// UTF8String implements the Text interface. Identical to String.
func (c Chunk) UTF8String() string {
	return c.s
}

// Bytes returns a copy of the underlying bytes. The copy keeps the
// immutability guarantee: the caller may freely write to the result.
func (c Chunk) Bytes() []byte {
	return []byte(c.s)
}

// RuneCount returns the number of code points in the view.
func (c Chunk) RuneCount() int {
	return utf8.RuneCountInString(c.s)
}

// Slice returns the sub-view c[start:end] in O(1), sharing the backing
// storage.
//
// It panics if the bounds are out of range or do not fall on code-point
// boundaries; the two conditions produce distinct messages because they
// indicate different caller bugs (index arithmetic vs Unicode awareness).
func (c Chunk) Slice(start, end int) Chunk {
	if start < 0 || end > len(c.s) || start > end {
		panic(fmt.Sprintf(
			"strchunk: slice bounds [%d:%d] are out of bounds of the string buffer (len %d)",
			start, end, len(c.s)))
	}
	if !IsBoundary(c.s, start) || !IsBoundary(c.s, end) {
		panic(fmt.Sprintf(
			"strchunk: slice bounds [%d:%d] do not split on a UTF-8 boundary",
			start, end))
	}
	return Chunk{s: c.s[start:end]}
}

// SliceRef returns the Chunk equivalent to sub, where sub is a substring
// known to alias this Chunk's backing storage (typically obtained by
// slicing c.String() or from an index into it). The result shares storage
// with c; nothing is copied.
//
// SliceRef panics if sub is not actually backed by c's storage, or if its
// ends do not fall on code-point boundaries of c (possible when the
// caller sliced the string mid-sequence).
func (c Chunk) SliceRef(sub string) Chunk {
	if len(sub) == 0 {
		return Chunk{}
	}
	cStart, cEnd := stringSpan(c.s)
	sStart, sEnd := stringSpan(sub)
	if sStart < cStart || sEnd > cEnd {
		panic("strchunk: SliceRef substring is not backed by this chunk's storage")
	}
	start := int(sStart - cStart)
	if !IsBoundary(c.s, start) || !IsBoundary(c.s, start+len(sub)) {
		panic(fmt.Sprintf(
			"strchunk: SliceRef substring at [%d:%d] does not split on a UTF-8 boundary",
			start, start+len(sub)))
	}
	return Chunk{s: sub}
}

// TakeRange removes the designated range from the Chunk and returns it as
// a new Chunk, leaving the remainder in place. Both views share the
// original backing storage; nothing is copied.
//
// The range endpoint is validated before any change, so a panicking call
// leaves the Chunk unmodified (see Range).
func (c *Chunk) TakeRange(r Range) Chunk {
	i := r.splitIndex(c.s)
	if r.takesPrefix() {
		out := Chunk{s: c.s[:i]}
		c.s = c.s[i:]
		return out
	}
	out := Chunk{s: c.s[i:]}
	c.s = c.s[:i]
	return out
}

// RemoveRange removes the designated range from the Chunk, discarding it.
// Equivalent to TakeRange with the result dropped.
func (c *Chunk) RemoveRange(r Range) {
	i := r.splitIndex(c.s)
	if r.takesPrefix() {
		c.s = c.s[i:]
	} else {
		c.s = c.s[:i]
	}
}

// Equal reports whether both chunks decode to the same text, regardless
// of where their storage lives. Equivalent to ==.
func (c Chunk) Equal(other Chunk) bool {
	return c.s == other.s
}
