package lexer

import (
	"bytes"
	"fmt"

	"stencil/internal/source"
	"stencil/internal/token"
)

// scanTag tries to scan one tag of the given kind at the current position.
// ok=false with a nil error is an ordinary no-match: the opener is not here
// and the caller moves on to the next alternative.
func (lx *Lexer) scanTag(kind token.Kind) (token.Token, bool, error) {
	opener := kind.Opener()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != opener[0] || b1 != opener[1] {
		return token.Token{}, false, nil
	}

	// Открывающий токен найден. Ищем **первое** вхождение парного
	// закрывающего токена: теги не вкладываются, чужой открывающий токен
	// внутри тела ничего не значит.
	closer := kind.Closer()
	rest := lx.cursor.Rest()
	j := bytes.Index(rest[len(opener):], closer)
	if j < 0 {
		sp := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 2}
		lx.report("unterminated-tag", sp,
			fmt.Sprintf("%s tag opened with %q is never closed with %q", kind, opener, closer))
		return token.Token{}, false, &ScanError{
			Err:  ErrUnterminatedTag,
			Tag:  kind,
			Off:  lx.cursor.Off,
			Line: lx.line,
		}
	}

	// Потребляем открывающий токен + тело + закрывающий токен целиком.
	consumed := rest[:len(opener)+j+len(closer)]
	mark := lx.cursor.Mark()
	lx.cursor.Advance(u32(len(consumed)))

	tok := token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(mark),
		Raw:  consumed,
		Body: token.TrimASCII(consumed[len(opener) : len(consumed)-len(closer)]),
		Line: lx.line,
	}
	lx.line += lx.countLines(consumed)
	return tok, true, nil
}
