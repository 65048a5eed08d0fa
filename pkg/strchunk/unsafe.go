package strchunk

import "unsafe"

// trustedString reinterprets b as a string without copying.
//
// This is the trusted constructor behind Freeze and Extract: it must only
// be called on bytes that (a) have already been proven to be valid UTF-8
// and (b) will never be written to again, because ownership of them has
// been transferred to the resulting immutable view. It is never exposed
// outside the package; external callers go through the checked FromBytes.
func trustedString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringSpan returns the start and one-past-end addresses of s's backing
// bytes, for containment checks in SliceRef. The addresses are compared
// immediately and never dereferenced or retained.
func stringSpan(s string) (start, end uintptr) {
	start = uintptr(unsafe.Pointer(unsafe.StringData(s)))
	return start, start + uintptr(len(s))
}
