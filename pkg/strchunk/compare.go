package strchunk

import "strings"

// Text is the decoded-text view shared by both buffer variants. Chunk and
// *Builder implement it; Str adapts a plain string. All equality and
// ordering in this package is defined over this view, so any pairing of
// implementations compares the same way.
type Text interface {
	UTF8String() string
}

// Str adapts a plain string (or any string-derived type) to Text.
type Str string

// UTF8String implements Text.
func (s Str) UTF8String() string {
	return string(s)
}

// Equal reports whether a and b decode to the same text, regardless of
// variant or storage.
func Equal(a, b Text) bool {
	return a.UTF8String() == b.UTF8String()
}

// Compare orders a and b lexicographically by bytes of their decoded
// text, returning -1, 0 or +1 like strings.Compare.
func Compare(a, b Text) int {
	return strings.Compare(a.UTF8String(), b.UTF8String())
}

// Less reports whether a orders strictly before b.
func Less(a, b Text) bool {
	return a.UTF8String() < b.UTF8String()
}
