package lexer

import (
	"stencil/internal/source"
	"stencil/internal/token"
)

// Lexer splits a template buffer into typed spans: plain text runs and the
// three delimited tag kinds. It owns the running 1-based line counter.
type Lexer struct {
	file   *source.File
	cursor Cursor
	line   uint32 // 1-based строка текущей позиции курсора
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		line:   1,
		opts:   opts,
	}
}

// Next возвращает следующий span. После конца ввода всегда возвращает EOF.
// Фатальные ошибки (ErrStrayClosingDelimiter, ErrUnterminatedTag) прекращают
// скан: дальнейшие вызовы Next не определены после не-nil ошибки.
func (lx *Lexer) Next() (token.Token, error) {
	// 1) Конец ввода — обычное завершение, не ошибка.
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Line: lx.line,
		}, nil
	}

	// 2) Пробуем открывающие токены в фиксированном порядке:
	//    Percent, Curly, Hash. Несовпадение — обычный no-match,
	//    переходим к следующей альтернативе.
	for _, kind := range token.TagKinds {
		tok, ok, err := lx.scanTag(kind)
		if err != nil {
			return token.Token{Kind: token.Invalid, Span: lx.emptySpan(), Line: lx.line}, err
		}
		if ok {
			return tok, nil
		}
	}

	// 3) Ни один открывающий токен не подошёл — это plain-текст
	//    (или stray закрывающий токен, что фатально).
	return lx.scanPlain()
}

// Line returns the current 1-based line of the cursor.
func (lx *Lexer) Line() uint32 { return lx.line }

// Offset returns the current byte offset of the cursor.
func (lx *Lexer) Offset() uint32 { return lx.cursor.Off }

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
