package lexer

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"stencil/internal/bytescan"
)

// delimiterStarts are the first bytes of the six delimiter tokens; used to
// skip ahead with bytes.IndexAny instead of checking every offset.
const delimiterStarts = "{%}#"

// nextDelimiter returns the offset of the first occurrence of any delimiter
// token ({%, {{, {#, %}, }}, #}) in b, or -1 if none occurs.
func nextDelimiter(b []byte) int {
	for i := 0; i < len(b); {
		j := bytes.IndexAny(b[i:], delimiterStarts)
		if j < 0 {
			return -1
		}
		i += j
		if isDelimiterAt(b[i:]) {
			return i
		}
		i++
	}
	return -1
}

// isDelimiterAt reports whether b starts with one of the six delimiter tokens.
func isDelimiterAt(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	switch b[0] {
	case '{':
		return b[1] == '%' || b[1] == '{' || b[1] == '#'
	case '%', '#', '}':
		return b[1] == '}'
	default:
		return false
	}
}

// countLines counts '\n' bytes in a consumed region via the batched scan.
func (lx *Lexer) countLines(b []byte) uint32 {
	return u32(bytescan.Count(b))
}

func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("length overflow: %w", err))
	}
	return v
}
