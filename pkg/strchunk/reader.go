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
	"errors"
	"io"
	"unicode/utf8"

	"github.com/benoit-pereira-da-silva/strchunk/pkg/rawbuf"
)

// defaultBufferCapacity is the initial accumulation capacity of a Reader.
const defaultBufferCapacity = 8 * 1024

// maxConsecutiveEmptyReads bounds how often a source may return (0, nil)
// before the Reader gives up with io.ErrNoProgress, as bufio does.
const maxConsecutiveEmptyReads = 100

// ErrTruncated reports that the byte source ended in the middle of a
// multi-byte UTF-8 sequence: the source made no further progress while
// undecoded bytes were still buffered, so the sequence can never
// complete. It is a data error of the stream, not a bug.
var ErrTruncated = errors.New("strchunk: incomplete UTF-8 sequence in input")

// Reader adapts an io.Reader of raw bytes into a sequence of UTF-8
// Chunks.
//
// Each ReadChunk call accumulates bytes into an internal rawbuf.Buffer
// and extracts the longest valid UTF-8 prefix, carrying sequences that
// straddle read boundaries over to the next call. Chunks share the
// accumulated storage; no decoded byte is ever copied.
//
// Usage pattern:
//
//	r := strchunk.NewReader(src)
//	for {
//		chunk, err := r.ReadChunk()
//		if err == io.EOF {
//			break
//		}
//		if err != nil { /* handle or recover */ }
//		/* consume chunk */
//	}
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src io.Reader
	buf *rawbuf.Buffer
	err error // sticky terminal condition of src
}

// NewReader returns a Reader over src with the default buffer capacity.
func NewReader(src io.Reader) *Reader {
	return NewReaderSize(src, defaultBufferCapacity)
}

// NewReaderSize returns a Reader over src whose accumulation buffer
// starts with the given capacity.
func NewReaderSize(src io.Reader, capacity int) *Reader {
	return &Reader{
		src: src,
		buf: rawbuf.WithCapacity(capacity),
	}
}

// ReadChunk returns the next non-empty chunk of decoded text.
//
// At the clean end of the stream it returns (empty Chunk, io.EOF). When
// the stream ends while an incomplete multi-byte sequence is still
// buffered — the source reports no progress and the remainder is
// non-empty — it returns ErrTruncated. When the stream contains an
// invalid UTF-8 sequence it returns the *ExtractError from Extract: the
// error carries the text recovered before the bad bytes, the bad bytes
// stay buffered, and the caller may Discard the reported length and call
// ReadChunk again to resume (see ReadChunkLossy for the packaged
// policy).
//
// Read errors from the source are returned after any bytes that arrived
// with them have been decoded and delivered; a final read returning both
// bytes and io.EOF ends the stream cleanly. A source that keeps
// returning (0, nil) is retried a bounded number of times and then
// reported as io.ErrNoProgress.
func (r *Reader) ReadChunk() (Chunk, error) {
	for emptyReads := 0; ; {
		chunk, err := Extract(r.buf)
		if err != nil {
			return Chunk{}, err
		}
		if !chunk.IsEmpty() {
			return chunk, nil
		}
		if r.err != nil {
			// The truncation verdict is made here, after extraction has
			// drained everything decodable: only a leftover remainder at
			// the end of the stream is a truncated sequence. A final read
			// that returned bytes together with io.EOF is a clean end.
			if (r.err == io.EOF || r.err == io.ErrNoProgress) && !r.buf.IsEmpty() {
				return Chunk{}, ErrTruncated
			}
			return Chunk{}, r.err
		}
		n, err := r.buf.Fill(r.src)
		switch {
		case err != nil:
			r.err = err
		case n == 0:
			if emptyReads++; emptyReads >= maxConsecutiveEmptyReads {
				r.err = io.ErrNoProgress
			}
		default:
			emptyReads = 0
		}
	}
}

// ReadChunkLossy is ReadChunk with the lossy recovery policy applied:
// invalid sequences and a truncated trailing sequence are skipped and
// replaced by U+FFFD in the returned text, so the only errors it returns
// are io.EOF and genuine read errors from the source.
//
// The substitution happens in the Reader's output only; the extraction
// machinery itself never alters data.
func (r *Reader) ReadChunkLossy() (Chunk, error) {
	chunk, err := r.ReadChunk()
	var xerr *ExtractError
	switch {
	case errors.As(err, &xerr):
		r.buf.Discard(xerr.ErrorLen)
		b := NewBuilderCap(xerr.Extracted.Len() + utf8.UTFMax)
		b.AppendString(xerr.Extracted.String())
		b.AppendRune(utf8.RuneError)
		return b.Freeze(), nil
	case errors.Is(err, ErrTruncated):
		r.buf.Discard(r.buf.Len())
		r.err = io.EOF
		return FromString(string(utf8.RuneError)), nil
	default:
		return chunk, err
	}
}

// Discard drops n bytes from the buffered raw remainder. It is the
// manual recovery step after an *ExtractError: discard ErrorLen bytes,
// then resume with ReadChunk.
func (r *Reader) Discard(n int) {
	r.buf.Discard(n)
}

// Buffered returns how many undecoded bytes are currently held in the
// raw remainder.
func (r *Reader) Buffered() int {
	return r.buf.Len()
}
