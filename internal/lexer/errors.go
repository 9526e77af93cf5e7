package lexer

import (
	"errors"
	"fmt"

	"stencil/internal/token"
)

// Sentinel failure conditions. Both abort the whole scan: a stray closer is
// structurally invalid input, and an unterminated tag leaves the remainder
// unscannable (no alternative can consume the dangling opener either).
var (
	// ErrStrayClosingDelimiter: a closing token sits where a span must start,
	// with no opening token before it.
	ErrStrayClosingDelimiter = errors.New("stray closing delimiter")
	// ErrUnterminatedTag: an opening token whose closing token never occurs
	// in the remaining input.
	ErrUnterminatedTag = errors.New("unterminated tag")
)

// ScanError is a fatal scan failure with the position it occurred at.
type ScanError struct {
	Err  error      // one of the sentinel values above
	Tag  token.Kind // offending tag kind for ErrUnterminatedTag, Invalid otherwise
	Off  uint32     // byte offset of the failure
	Line uint32     // 1-based line of the failure
}

func (e *ScanError) Error() string {
	if e.Tag.IsTag() {
		return fmt.Sprintf("%v (%s opened with %q) at offset %d, line %d",
			e.Err, e.Tag, e.Tag.Opener(), e.Off, e.Line)
	}
	return fmt.Sprintf("%v at offset %d, line %d", e.Err, e.Off, e.Line)
}

func (e *ScanError) Unwrap() error { return e.Err }
