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

// Builder is a uniquely-owned, growable buffer whose initialized content
// is always valid UTF-8. It is the exclusive-mutable counterpart of
// Chunk.
//
// A Builder accumulates text through the Put/Append families and is
// turned into an immutable Chunk by Freeze, a one-way, zero-copy
// ownership transfer. It must not be shared between goroutines; move it,
// don't alias it.
//
// The Put variants (PutRune, PutString) follow a strict capacity
// contract: the caller reserves space up front and a short buffer is a
// programming error that panics. The Append variants reserve internally
// and never fail. The zero value is an empty Builder ready for use.
type Builder struct {
	buf []byte
}

// NewBuilder returns a new empty Builder with no preallocated capacity.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewBuilderCap returns a new empty Builder able to hold at least
// capacity bytes without reallocating.
func NewBuilderCap(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// BuilderFromString returns a new Builder initialized with a copy of s.
func BuilderFromString(s string) *Builder {
	return &Builder{buf: []byte(s)}
}

// Len returns the length of the initialized content in bytes.
func (b *Builder) Len() int {
	return len(b.buf)
}

// IsEmpty reports whether the initialized content has length 0.
func (b *Builder) IsEmpty() bool {
	return len(b.buf) == 0
}

// Cap returns the total capacity of the current backing storage.
func (b *Builder) Cap() int {
	return cap(b.buf)
}

// Remaining returns how many bytes can be appended past the current
// length without reallocating.
func (b *Builder) Remaining() int {
	return cap(b.buf) - len(b.buf)
}

// Reserve ensures that at least additional more bytes can be appended
// without reallocating. It may reallocate and copy the current content;
// since only initialized, already-valid bytes are copied, the UTF-8
// invariant is unaffected.
func (b *Builder) Reserve(additional int) {
	if additional < 0 {
		panic("strchunk: negative reserve size")
	}
	if cap(b.buf)-len(b.buf) >= additional {
		return
	}
	grown := make([]byte, len(b.buf), growCapacity(len(b.buf), additional))
	copy(grown, b.buf)
	b.buf = grown
}

func growCapacity(length, additional int) int {
	need := length + additional
	if doubled := 2 * length; doubled > need {
		return doubled
	}
	return need
}

// PutRune appends one code point, encoded as 1–4 bytes of UTF-8.
//
// It panics when the remaining capacity cannot hold the encoding;
// reserving utf8.UTFMax (4) bytes beforehand is always sufficient. Use
// AppendRune when automatic growth is wanted instead. Invalid code points
// (surrogates, values above U+10FFFF) are encoded as U+FFFD, matching
// utf8.EncodeRune, so the content stays valid.
func (b *Builder) PutRune(r rune) {
	n := utf8.RuneLen(r)
	if n < 0 {
		r, n = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}
	if cap(b.buf)-len(b.buf) < n {
		panic(fmt.Sprintf(
			"strchunk: insufficient capacity to encode %U: need %d bytes, %d remaining",
			r, n, cap(b.buf)-len(b.buf)))
	}
	b.buf = utf8.AppendRune(b.buf, r)
}

// PutString appends s under the strict capacity contract: it panics when
// the remaining capacity is shorter than s. Use AppendString for
// automatic growth. The content stays valid trivially, s being text
// already.
func (b *Builder) PutString(s string) {
	if cap(b.buf)-len(b.buf) < len(s) {
		panic(fmt.Sprintf(
			"strchunk: insufficient capacity to append %d bytes: %d remaining",
			len(s), cap(b.buf)-len(b.buf)))
	}
	b.buf = append(b.buf, s...)
}

// AppendRune appends one code point, reserving capacity as needed.
func (b *Builder) AppendRune(r rune) {
	b.buf = utf8.AppendRune(b.buf, r)
}

// AppendString appends s, reserving capacity as needed.
func (b *Builder) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// Freeze converts the Builder's content into an immutable Chunk.
//
// The conversion is zero-copy: ownership of the initialized bytes is
// transferred to the Chunk, and the Builder is emptied (its storage
// detached) so nothing can ever mutate the frozen bytes again. The
// transition is one-way; building more text requires appending to the
// now-empty Builder, which allocates fresh storage.
func (b *Builder) Freeze() Chunk {
	s := trustedString(b.buf)
	b.buf = nil
	return Chunk{s: s}
}

// String returns a copy of the content as a string. Unlike
// Chunk.String, this must copy: the Builder may keep mutating its
// storage afterwards.
func (b *Builder) String() string {
	return string(b.buf)
}

// UTF8String implements the Text interface. Identical to String.
func (b *Builder) UTF8String() string {
	return string(b.buf)
}

// Bytes returns a copy of the initialized bytes.
func (b *Builder) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// view reinterprets the initialized bytes as a string for validation and
// comparison during a single call. The result must not escape: the
// underlying bytes stay owned and mutable.
func (b *Builder) view() string {
	return trustedString(b.buf)
}

// TakeRange removes the designated range from the Builder and returns it
// as a new Builder, leaving the remainder in place. The transfer is
// zero-copy: the two Builders alias disjoint windows of the original
// storage, each capacity-capped so neither can grow into the other.
//
// The range endpoint is validated before any change, so a panicking call
// leaves the Builder unmodified (see Range).
func (b *Builder) TakeRange(r Range) *Builder {
	i := r.splitIndex(b.view())
	if r.takesPrefix() {
		out := b.buf[:i:i]
		b.buf = b.buf[i:]
		return &Builder{buf: out}
	}
	out := b.buf[i:len(b.buf):len(b.buf)]
	b.buf = b.buf[:i:i]
	return &Builder{buf: out}
}

// RemoveRange removes the designated range from the Builder, discarding
// it. Equivalent to TakeRange with the result dropped.
func (b *Builder) RemoveRange(r Range) {
	i := r.splitIndex(b.view())
	if r.takesPrefix() {
		b.buf = b.buf[i:]
	} else {
		b.buf = b.buf[:i]
	}
}

// Truncate shortens the content to n bytes. It panics when n is out of
// bounds or falls inside a multi-byte sequence, in which case the content
// is left unchanged.
func (b *Builder) Truncate(n int) {
	checkBoundary(b.view(), To(n), n)
	b.buf = b.buf[:n]
}
