package token

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"stencil/internal/source"
)

// Token represents a single template span with its location and 1-based line.
// Raw and Body alias the original buffer; they stay valid only as long as the
// buffer they were scanned from.
type Token struct {
	Kind Kind
	Span source.Span
	Raw  []byte // covered bytes, delimiters included for tags
	Body []byte // trimmed tag body; nil for Plain and EOF
	Line uint32
}

// Output returns the bytes the reconstruction pass writes for this span:
// the raw bytes for Plain, the trimmed body for tags, nothing for EOF.
func (t Token) Output() []byte {
	if t.Kind.IsTag() {
		return t.Body
	}
	if t.Kind == Plain {
		return t.Raw
	}
	return nil
}

// String renders the span for debugging and snapshot assertions, decoding
// byte views as UTF-8 when valid.
func (t Token) String() string {
	switch t.Kind {
	case Plain:
		return fmt.Sprintf("Plain(%s) @%d", renderBytes(t.Raw), t.Line)
	case Percent, Curly, Hash:
		return fmt.Sprintf("%s(%s) @%d", t.Kind, renderBytes(t.Body), t.Line)
	case EOF:
		return fmt.Sprintf("EOF @%d", t.Line)
	}
	return fmt.Sprintf("Invalid(%s) @%d", renderBytes(t.Raw), t.Line)
}

// renderBytes quotes b as UTF-8 text, falling back to a hex dump with an
// explicit marker when b is not valid UTF-8.
func renderBytes(b []byte) string {
	if utf8.Valid(b) {
		return strconv.Quote(string(b))
	}
	return fmt.Sprintf("<invalid utf-8: % x>", b)
}
