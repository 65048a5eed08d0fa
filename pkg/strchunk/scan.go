package strchunk

// ScanChunks is a split function for a bufio.Scanner that tokenizes a
// byte stream into maximal valid UTF-8 chunks, in the manner of
// ScanLines for lines: each token is the longest valid UTF-8 prefix of
// the buffered window, and a multi-byte sequence cut by the window edge
// is held back until more data arrives.
//
// Invalid input stops the scanner with an *ExtractError whose ErrorLen
// reports the skippable length (the valid text before it has already
// been emitted as tokens). A stream ending inside a multi-byte sequence
// stops the scanner with ErrTruncated.
func ScanChunks(data []byte, atEOF bool) (advance int, token []byte, err error) {
	validUpTo, invalidLen := validUTF8(data)
	if validUpTo > 0 {
		return validUpTo, data[:validUpTo], nil
	}
	switch {
	case invalidLen > 0:
		return 0, nil, &ExtractError{ErrorLen: invalidLen}
	case invalidLen < 0 && atEOF:
		return 0, nil, ErrTruncated
	default:
		// Empty window, or a bare incomplete sequence mid-stream:
		// request more data.
		return 0, nil, nil
	}
}
