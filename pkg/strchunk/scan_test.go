package strchunk

import (
	"bufio"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanChunks(t *testing.T) {
	const text = "Hello, 世界! Привет 🌍"

	// One byte per read forces every multi-byte sequence to straddle a
	// scan window at least once.
	scanner := bufio.NewScanner(iotest.OneByteReader(strings.NewReader(text)))
	scanner.Split(ScanChunks)

	var sb strings.Builder
	for scanner.Scan() {
		token := scanner.Text()
		require.NotEmpty(t, token, "ScanChunks must never emit an empty token")
		sb.WriteString(token)
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, text, sb.String())
}

func TestScanChunks_InvalidInput(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("Hello \xf0\x90\x80World"))
	scanner.Split(ScanChunks)

	require.True(t, scanner.Scan())
	assert.Equal(t, "Hello ", scanner.Text())

	assert.False(t, scanner.Scan())
	var xerr *ExtractError
	require.ErrorAs(t, scanner.Err(), &xerr)
	assert.Equal(t, 3, xerr.ErrorLen)
}

func TestScanChunks_TruncatedInput(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("Здра\xd0"))
	scanner.Split(ScanChunks)

	require.True(t, scanner.Scan())
	assert.Equal(t, "Здра", scanner.Text())

	assert.False(t, scanner.Scan())
	assert.ErrorIs(t, scanner.Err(), ErrTruncated)
}

func TestScanChunks_EmptyInput(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader(""))
	scanner.Split(ScanChunks)
	assert.False(t, scanner.Scan())
	assert.NoError(t, scanner.Err())
}
