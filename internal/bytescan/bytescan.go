// Package bytescan provides batched byte counting used by the scanner to
// keep its running line number accurate without re-walking consumed regions
// byte by byte. Count is a pure function and safe for concurrent use.
package bytescan

import (
	"encoding/binary"
	"math/bits"
)

const (
	wordSize = 8
	ones     = 0x0101010101010101
	low7     = 0x7f7f7f7f7f7f7f7f
	newlines = ones * uint64('\n')
)

// Count returns the number of '\n' bytes in b.
// The word-at-a-time path must stay byte-identical to countScalar for every
// input; countScalar is the reference the tests compare against.
func Count(b []byte) int {
	n := 0
	for len(b) >= wordSize {
		w := binary.LittleEndian.Uint64(b)
		x := w ^ newlines
		// High bit of each lane is set iff the lane is zero, i.e. the
		// original byte was '\n'. The masked add cannot carry between
		// lanes, so the count is exact.
		y := ^(((x & low7) + low7) | x | low7)
		n += bits.OnesCount64(y)
		b = b[wordSize:]
	}
	return n + countScalar(b)
}

// countScalar is the naive reference loop.
func countScalar(b []byte) int {
	n := 0
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}
