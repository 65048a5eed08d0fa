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

import "fmt"

// IsBoundary reports whether i is a UTF-8 code-point boundary within s.
//
// 0 and len(s) are always boundaries. An interior index is a boundary iff
// the byte at that index is not a continuation byte (0x80–0xBF), i.e. it
// starts a new encoded code point. Out-of-range indices are not
// boundaries.
func IsBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return s[i]&0xC0 != 0x80
}

// checkBoundary validates a single split index against s and panics when
// the index cannot be split at.
//
// The two failure messages are deliberately distinct: an out-of-bounds
// index is an index-arithmetic bug in the caller, while an index inside a
// multi-byte sequence is a Unicode-awareness bug. Keep them apart.
func checkBoundary(s string, r Range, i int) {
	if IsBoundary(s, i) {
		return
	}
	boundaryFail(s, r, i)
}

// boundaryFail reports the failed split. Kept out of the hot path.
func boundaryFail(s string, r Range, i int) {
	if i < 0 || i > len(s) {
		panic(fmt.Sprintf(
			"strchunk: range %v is out of bounds of the string buffer (len %d)",
			r, len(s)))
	}
	panic(fmt.Sprintf(
		"strchunk: range %v does not split on a UTF-8 boundary", r))
}
