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

// Package strchunk provides UTF-8-validated views over byte buffers, with
// zero-copy slicing and incremental extraction from a streaming byte
// source.
//
// Two buffer variants carry the UTF-8 guarantee:
//
//   - Chunk is an immutable, cheaply shared view. Cloning and slicing a
//     Chunk never copy memory; any number of Chunks may alias the same
//     backing storage and may be read concurrently from multiple
//     goroutines.
//   - Builder is a uniquely-owned, growable buffer. Characters and
//     strings are appended to it, and it is turned into a Chunk by the
//     one-way, zero-copy Freeze transition.
//
// The invariant for both: their readable content is valid UTF-8 at all
// times — never an incomplete trailing sequence, never an invalid byte.
//
// Extract is the incremental decoder at the heart of the package. Given a
// rawbuf.Buffer accumulating bytes from I/O, it transfers out the longest
// valid UTF-8 prefix as a Chunk without copying, leaving a trailing
// incomplete sequence (if any) buffered for the next read cycle, and
// reporting genuinely invalid sequences with enough information for the
// caller to skip them and resume. Reader packages that loop for
// io.Reader sources; ScanChunks does the same for bufio.Scanner
// pipelines.
//
// Slicing, splitting and truncation all validate their endpoints against
// UTF-8 code-point boundaries before touching any storage; a violation is
// a caller bug and panics, leaving the buffer unchanged.
//
// The package performs no encoding conversion and no I/O of its own
// beyond the Reader adapter; it operates on bytes already in memory.
package strchunk
