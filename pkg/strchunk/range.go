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
	"math"
)

// rangeKind tags the shape of a Range.
type rangeKind uint8

const (
	rangeFull   rangeKind = iota // the whole buffer
	rangeFrom                    // [index, len)
	rangeTo                      // [0, index)
	rangeToIncl                  // [0, index]
)

// A Range designates a splittable sub-range of a buffer, anchored at one
// of its ends. The four shapes — whole buffer, from a start index to the
// end, and up to an end index (exclusive or inclusive) — are the ones a
// split can honor without leaving two remainders.
//
// Both buffer variants consume Ranges through the same
// validate-then-split logic: TakeRange transfers the designated bytes
// out, RemoveRange discards them, and in both cases the endpoint is
// checked against UTF-8 code-point boundaries before any mutation, so a
// failed call leaves the buffer unchanged.
type Range struct {
	kind  rangeKind
	index int
}

// Full designates the whole buffer.
func Full() Range {
	return Range{kind: rangeFull}
}

// From designates the bytes from start (inclusive) to the end of the
// buffer.
func From(start int) Range {
	return Range{kind: rangeFrom, index: start}
}

// To designates the bytes from the start of the buffer up to end
// (exclusive).
func To(end int) Range {
	return Range{kind: rangeTo, index: end}
}

// ToIncl designates the bytes from the start of the buffer up to end
// (inclusive). The byte at end must itself end a code point, so the
// boundary check applies to end+1.
func ToIncl(end int) Range {
	return Range{kind: rangeToIncl, index: end}
}

// String renders the range in the conventional slice notation:
// "..", "2..", "..5", "..=4".
func (r Range) String() string {
	switch r.kind {
	case rangeFull:
		return ".."
	case rangeFrom:
		return fmt.Sprintf("%d..", r.index)
	case rangeTo:
		return fmt.Sprintf("..%d", r.index)
	default:
		return fmt.Sprintf("..=%d", r.index)
	}
}

// splitIndex resolves r against content s, returning the byte index at
// which the buffer splits. It panics (leaving all buffers untouched —
// callers must not mutate before calling it) when the endpoint is out of
// bounds or falls inside a multi-byte sequence.
func (r Range) splitIndex(s string) int {
	switch r.kind {
	case rangeFull:
		return len(s)
	case rangeFrom, rangeTo:
		checkBoundary(s, r, r.index)
		return r.index
	default: // rangeToIncl
		if r.index < 0 {
			boundaryFail(s, r, r.index)
		}
		if r.index == math.MaxInt {
			panic(fmt.Sprintf(
				"strchunk: upper bound index %d is too large for a buffer in memory",
				r.index))
		}
		checkBoundary(s, r, r.index+1)
		return r.index + 1
	}
}

// takesPrefix reports whether r designates a prefix of the buffer (true)
// or a suffix (false, only for the From shape). The Full shape counts as
// a prefix covering everything.
func (r Range) takesPrefix() bool {
	return r.kind != rangeFrom
}
