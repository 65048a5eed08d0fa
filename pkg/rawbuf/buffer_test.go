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

package rawbuf

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_ZeroValue(t *testing.T) {
	var b Buffer
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsEmpty())
	assert.Empty(t, b.Bytes())
}

func TestBuffer_WriteAndLen(t *testing.T) {
	b := New()
	n, err := b.Write([]byte("Hel"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = b.WriteString("lo")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, b.WriteByte('!'))

	assert.Equal(t, 6, b.Len())
	assert.Equal(t, []byte("Hello!"), b.Bytes())
}

func TestBuffer_Reserve(t *testing.T) {
	b := WithCapacity(4)
	require.GreaterOrEqual(t, b.Cap(), 4)

	b.WriteString("Hi")
	b.Reserve(64)
	require.GreaterOrEqual(t, b.Cap()-b.Len(), 64)
	// Existing content survives the reallocation.
	assert.Equal(t, []byte("Hi"), b.Bytes())

	assert.Panics(t, func() { b.Reserve(-1) })
}

func TestBuffer_SplitTo(t *testing.T) {
	b := FromBytes([]byte("Hello World"))

	prefix := b.SplitTo(6)
	assert.Equal(t, []byte("Hello "), prefix)
	assert.Equal(t, []byte("World"), b.Bytes())
	assert.Equal(t, 5, b.Len())

	rest := b.Take()
	assert.Equal(t, []byte("World"), rest)
	assert.True(t, b.IsEmpty())
}

// Appending after SplitTo must never reach the split-off prefix: the
// prefix is capacity-capped and the buffer only writes past its own
// window.
func TestBuffer_SplitTo_PrefixIsNotClobbered(t *testing.T) {
	b := WithCapacity(64)
	b.WriteString("Здра")
	b.WriteByte(0xd0)

	prefix := b.SplitTo(8)
	require.Equal(t, "Здра", string(prefix))

	// Keep appending into the same backing storage.
	b.WriteString(strings.Repeat("x", 128))
	b.Reset()
	b.WriteString("replacement content, long enough to matter")

	assert.Equal(t, "Здра", string(prefix))
}

func TestBuffer_SplitTo_OutOfRange(t *testing.T) {
	b := FromBytes([]byte("abc"))
	assert.Panics(t, func() { b.SplitTo(4) })
	assert.Panics(t, func() { b.SplitTo(-1) })
	// A failed split leaves the content untouched.
	assert.Equal(t, []byte("abc"), b.Bytes())
}

func TestBuffer_Discard(t *testing.T) {
	b := FromBytes([]byte("abcdef"))
	b.Discard(2)
	assert.Equal(t, []byte("cdef"), b.Bytes())

	b.Discard(4)
	assert.True(t, b.IsEmpty())

	assert.Panics(t, func() { b.Discard(1) })
	assert.Panics(t, func() { b.Discard(-1) })
}

func TestBuffer_Fill(t *testing.T) {
	src := strings.NewReader("Hello")
	b := New()

	n, err := b.Fill(src)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("Hello"), b.Bytes())

	n, err = b.Fill(src)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestBuffer_Fill_SingleReadOnly(t *testing.T) {
	// iotest-style one-byte source: each Fill appends exactly one byte.
	src := io.LimitReader(bytes.NewReader([]byte("ab")), 2)
	one := onlyOneByte{src}

	b := New()
	n, err := b.Fill(one)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = b.Fill(one)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte("ab"), b.Bytes())
}

type onlyOneByte struct {
	r io.Reader
}

func (o onlyOneByte) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return o.r.Read(p)
}

func TestBuffer_FromBytes_Copies(t *testing.T) {
	src := []byte("abc")
	b := FromBytes(src)
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), b.Bytes())
}
