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

// Package rawbuf provides a growable, exclusively-owned byte accumulator
// with zero-copy prefix transfer.
//
// A Buffer collects raw, not-yet-validated bytes (typically read from an
// io.Reader) and hands prefixes of them over to a consumer in O(1) without
// copying. It is the accumulation stage feeding strchunk.Extract: bytes go
// in at the back, validated prefixes come out at the front.
//
// A Buffer must not be used from multiple goroutines concurrently; it has
// single-owner semantics. Prefixes returned by SplitTo and Take alias the
// Buffer's former storage and must be treated as immutable by the caller —
// the Buffer itself will never write to them again.
package rawbuf

import "io"

// minFillSize is the smallest spare capacity Fill guarantees before
// issuing a Read, so that even a pathological reader can always make
// progress on a multi-byte UTF-8 sequence.
const minFillSize = 64

// Buffer is a growable byte container with exclusive ownership of its
// content. The zero value is an empty buffer ready for use.
type Buffer struct {
	data []byte
}

// New returns a new empty Buffer with no preallocated capacity.
func New() *Buffer {
	return &Buffer{}
}

// WithCapacity returns a new empty Buffer able to hold at least n bytes
// without reallocating.
func WithCapacity(n int) *Buffer {
	return &Buffer{data: make([]byte, 0, n)}
}

// FromBytes returns a new Buffer initialized with a copy of b. The copy
// keeps ownership exclusive: the caller remains free to reuse b.
func FromBytes(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)
	return &Buffer{data: data}
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the Buffer holds no bytes.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Cap returns the total capacity of the current backing storage.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Bytes returns the accumulated bytes as a view aliasing the Buffer's
// storage. The view is invalidated by any mutating call on the Buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Reserve ensures that at least additional bytes can be appended without
// reallocating. It may reallocate and copy the current content.
func (b *Buffer) Reserve(additional int) {
	if additional < 0 {
		panic("rawbuf: negative reserve size")
	}
	if cap(b.data)-len(b.data) >= additional {
		return
	}
	grown := make([]byte, len(b.data), growCap(len(b.data), additional))
	copy(grown, b.data)
	b.data = grown
}

// growCap picks the new capacity for a reallocation: at least enough for
// the requested headroom, at least double the current length to keep
// append amortized.
func growCap(length, additional int) int {
	need := length + additional
	if doubled := 2 * length; doubled > need {
		return doubled
	}
	return need
}

// Write appends p to the Buffer. It implements io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString appends s to the Buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	b.data = append(b.data, s...)
	return len(s), nil
}

// WriteByte appends a single byte. It implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	b.data = append(b.data, c)
	return nil
}

// SplitTo removes the first n bytes from the Buffer and returns them as an
// independently owned slice, in O(1) and without copying. The returned
// slice has its capacity capped at n, and the Buffer only ever appends
// past its own length, so later writes to the Buffer cannot reach the
// returned bytes. The caller must treat them as immutable.
//
// SplitTo panics if n is negative or exceeds Len.
func (b *Buffer) SplitTo(n int) []byte {
	if n < 0 || n > len(b.data) {
		panic("rawbuf: SplitTo index out of range")
	}
	prefix := b.data[:n:n]
	b.data = b.data[n:]
	return prefix
}

// Take removes and returns the Buffer's entire content, leaving it empty.
// Equivalent to SplitTo(Len()).
func (b *Buffer) Take() []byte {
	return b.SplitTo(len(b.data))
}

// Discard drops the first n bytes without transferring them, in O(1).
// It panics if n is negative or exceeds Len.
func (b *Buffer) Discard(n int) {
	if n < 0 || n > len(b.data) {
		panic("rawbuf: Discard count out of range")
	}
	b.data = b.data[n:]
}

// Fill performs exactly one Read from r into the Buffer's spare capacity
// and reports how many bytes arrived, passing the source's error through
// untouched. End-of-stream policy (EOF, no-progress retries, truncation)
// is the caller's concern.
//
// Fill reserves spare capacity before reading, so it can be called in a
// loop without any other preparation.
func (b *Buffer) Fill(r io.Reader) (int, error) {
	if cap(b.data)-len(b.data) < minFillSize {
		b.Reserve(minFillSize)
	}
	n, err := r.Read(b.data[len(b.data):cap(b.data)])
	if n < 0 {
		panic("rawbuf: reader returned negative count")
	}
	b.data = b.data[:len(b.data)+n]
	return n, err
}

// Reset drops the content but keeps the remaining backing storage for
// reuse. Prefixes handed out by SplitTo or Take stay untouched: the
// Buffer's window always begins past them.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
