// Package template drives the span scanner over whole buffers and writes
// reconstructed output back out.
package template

import (
	"errors"
	"fmt"

	"stencil/internal/lexer"
	"stencil/internal/source"
	"stencil/internal/token"
)

// ErrIncompleteConsumption: скан завершился, но часть буфера осталась вне
// спанов. При корректном сканере недостижимо (EOF выдаётся только на конце
// буфера), но контракт ParsedTemplate проверяет это явно.
var ErrIncompleteConsumption = errors.New("input left unscanned after the final span")

// ParsedTemplate is the ordered span sequence scanned from one immutable
// buffer. The spans, concatenated by their covered ranges, reproduce the
// buffer exactly once, with no gaps and no overlaps. All span bytes alias
// the buffer: the File must outlive the ParsedTemplate. Read-only after
// construction.
type ParsedTemplate struct {
	file  *source.File
	spans []token.Token
}

// Parse runs the scanner over file from line 1, accumulating spans until the
// scanner reports end of input or fails. A fatal scan failure (stray closing
// delimiter, unterminated tag) returns a nil template and the *lexer.ScanError
// carrying the failure offset and line; no partial recovery is attempted.
func Parse(file *source.File, opts lexer.Options) (*ParsedTemplate, error) {
	lx := lexer.New(file, opts)

	var spans []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind.IsEOF() {
			break
		}
		spans = append(spans, tok)
	}

	if int(lx.Offset()) != len(file.Content) {
		if opts.Reporter != nil {
			sp := source.Span{File: file.ID, Start: lx.Offset(), End: lx.Offset()}
			opts.Reporter.Report("incomplete-consumption", sp,
				fmt.Sprintf("scan stopped at offset %d of %d", lx.Offset(), len(file.Content)))
		}
		return nil, fmt.Errorf("%w: stopped at offset %d of %d",
			ErrIncompleteConsumption, lx.Offset(), len(file.Content))
	}

	return &ParsedTemplate{file: file, spans: spans}, nil
}

// New scans an in-memory buffer without diagnostics plumbing. The buffer is
// registered as a virtual file; it must stay immutable for the lifetime of
// the returned template.
func New(content []byte) (*ParsedTemplate, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("template", content)
	return Parse(fs.Get(id), lexer.Options{})
}

// Spans returns the ordered span sequence. Callers must not modify it.
func (t *ParsedTemplate) Spans() []token.Token {
	return t.spans
}

// File returns the buffer the template was scanned from.
func (t *ParsedTemplate) File() *source.File {
	return t.file
}

// Len returns the number of spans.
func (t *ParsedTemplate) Len() int {
	return len(t.spans)
}
