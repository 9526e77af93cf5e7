package lexer

import (
	"fmt"

	"stencil/internal/source"
	"stencil/internal/token"
)

// scanPlain consumes a maximal run of literal text: everything up to the
// first occurrence of any of the six delimiter tokens, or the rest of the
// buffer if none occurs. Openers were already ruled out by the caller, so a
// delimiter at offset 0 can only be a stray closing token — structurally
// invalid input that aborts the whole scan.
func (lx *Lexer) scanPlain() (token.Token, error) {
	rest := lx.cursor.Rest()

	i := nextDelimiter(rest)
	if i == 0 {
		sp := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 2}
		lx.report("stray-closing-delimiter", sp,
			fmt.Sprintf("closing delimiter %q has no matching opening token", rest[:2]))
		return token.Token{Kind: token.Invalid, Span: sp, Line: lx.line}, &ScanError{
			Err:  ErrStrayClosingDelimiter,
			Off:  lx.cursor.Off,
			Line: lx.line,
		}
	}
	if i < 0 {
		// Разделителей больше нет — остаток буфера целиком plain.
		i = len(rest)
	}

	raw := rest[:i]
	mark := lx.cursor.Mark()
	lx.cursor.Advance(u32(i))

	tok := token.Token{
		Kind: token.Plain,
		Span: lx.cursor.SpanFrom(mark),
		Raw:  raw,
		Line: lx.line,
	}
	lx.line += lx.countLines(raw)
	return tok, nil
}
