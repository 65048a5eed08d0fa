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

	"github.com/benoit-pereira-da-silva/strchunk/pkg/rawbuf"
)

// ExtractError reports an invalid UTF-8 sequence found by Extract (or by
// the checked conversion FromBytes).
//
// Extracted is the valid content recovered up to the invalid sequence,
// possibly empty; it has already been removed from the source buffer.
// ErrorLen is the byte length of the invalid sequence itself (the Unicode
// "maximal subpart", 1 to 3 bytes). Recovery is the caller's policy: skip
// ErrorLen bytes in the source (rawbuf.Buffer.Discard), optionally emit
// U+FFFD in its own output, and extract again. Extraction itself never
// substitutes.
type ExtractError struct {
	Extracted Chunk
	ErrorLen  int
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf(
		"strchunk: invalid UTF-8 sequence of %d bytes after %d valid bytes",
		e.ErrorLen, e.Extracted.Len())
}

// Extract removes the longest valid UTF-8 prefix from raw and returns it
// as a Chunk. The transfer is zero-copy: the raw storage changes owner,
// it is not duplicated.
//
// Three outcomes:
//
//   - raw is entirely valid (the common case for fully-buffered reads):
//     the whole content is transferred and raw is left empty.
//   - raw ends with an incomplete multi-byte sequence: the valid prefix
//     (possibly empty) is transferred and the undecoded tail stays in raw
//     for the next append+extract cycle. Not an error — more bytes may
//     complete it. An empty raw buffer likewise yields an empty Chunk.
//   - raw contains a sequence that no further input can make valid: the
//     valid prefix is removed from raw and returned inside an
//     *ExtractError along with the invalid sequence's length; the invalid
//     bytes themselves are left at the front of raw for the caller's
//     recovery policy.
//
// End-of-stream policy belongs to the caller: once the byte source makes
// no progress, a non-empty raw remainder means the stream was truncated
// mid-sequence (see Reader.ReadChunk and ErrTruncated).
func Extract(raw *rawbuf.Buffer) (Chunk, error) {
	validUpTo, invalidLen := validUTF8(raw.Bytes())
	extracted := Chunk{s: trustedString(raw.SplitTo(validUpTo))}
	if invalidLen > 0 {
		return Chunk{}, &ExtractError{Extracted: extracted, ErrorLen: invalidLen}
	}
	return extracted, nil
}

// invalidLength normalizes a validUTF8 verdict for one-shot conversions,
// where an incomplete trailing sequence (invalidLen < 0) is just as
// unrecoverable as an invalid one: no further input will arrive. The
// whole remaining tail is then the sequence to report.
func invalidLength(invalidLen, remaining int) int {
	if invalidLen > 0 {
		return invalidLen
	}
	return remaining
}

// UTF-8 first-byte classification and continuation ranges, as defined by
// the Unicode standard (table 3-7) and laid out the way unicode/utf8 does
// internally. first[c] packs the index into acceptRanges (high nibble)
// and the sequence size (low 3 bits) for a lead byte c; xx marks bytes
// that can never start a sequence.
const (
	locb = 0x80 // lowest continuation byte
	hicb = 0xBF // highest continuation byte

	xx = 0xF1 // invalid: size 1
	as = 0xF0 // ASCII: size 1
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4
)

var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

type acceptRange struct {
	lo, hi uint8 // valid range for the second byte of a sequence
}

var acceptRanges = [16]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb},
	2: {locb, 0x9F},
	3: {0x90, hicb},
	4: {locb, 0x8F},
}

// validUTF8 scans p once and returns the length of its longest valid
// UTF-8 prefix, plus a verdict on what follows it:
//
//	invalidLen == 0  — nothing follows; p is entirely valid.
//	invalidLen <  0  — p ends with the truncated start of a sequence
//	                   that further input could still complete.
//	invalidLen >  0  — p[validUpTo:] starts a sequence no input can
//	                   complete; invalidLen is its maximal-subpart
//	                   length (1–3 bytes), the amount to skip for
//	                   lossy recovery.
//
// The distinction between "truncated" and "invalid" is what makes
// incremental extraction possible; unicode/utf8 alone does not expose the
// skip length, hence this local scan over the standard tables.
func validUTF8(p []byte) (validUpTo, invalidLen int) {
	n := len(p)
	i := 0
	for i < n {
		c := p[i]
		if c < utf8.RuneSelf {
			i++
			continue
		}
		x := first[c]
		if x == xx {
			return i, 1
		}
		size := int(x & 7)
		accept := acceptRanges[x>>4]
		for k := 1; k < size; k++ {
			if i+k >= n {
				// Sequence runs past the end: truncated, not invalid.
				return i, -1
			}
			lo, hi := locb, hicb
			if k == 1 {
				lo, hi = int(accept.lo), int(accept.hi)
			}
			if b := int(p[i+k]); b < lo || b > hi {
				// The lead byte plus the k-1 continuation bytes that did
				// fit form the maximal subpart to skip.
				return i, k
			}
		}
		i += size
	}
	return n, 0
}
