package token

// IsASCIISpace matches the ASCII whitespace set used for body trimming:
// space, tab, newline, form feed, carriage return.
func IsASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

// TrimASCII trims leading and trailing ASCII whitespace without copying.
// Tag bodies are stored trimmed, so re-trimming is always a no-op.
func TrimASCII(b []byte) []byte {
	lo, hi := 0, len(b)
	for lo < hi && IsASCIISpace(b[lo]) {
		lo++
	}
	for hi > lo && IsASCIISpace(b[hi-1]) {
		hi--
	}
	return b[lo:hi]
}
