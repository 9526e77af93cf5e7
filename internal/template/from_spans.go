package template

import (
	"fmt"

	"stencil/internal/source"
	"stencil/internal/token"
)

// FromSpans reassembles a template from an externally stored span table
// (the driver's disk cache keeps offsets, not bytes). Raw views are
// re-attached to file's content here, so the zero-copy contract is
// preserved; tag Body views must already be re-attached by the caller.
// The table must cover file exactly; a stale or foreign table is rejected.
func FromSpans(file *source.File, spans []token.Token) (*ParsedTemplate, error) {
	next := uint32(0)
	for i := range spans {
		sp := &spans[i]
		if sp.Span.Start != next || sp.Span.End < sp.Span.Start || int(sp.Span.End) > len(file.Content) {
			return nil, fmt.Errorf("span table does not cover the buffer at span %d (%v)", i, sp.Span)
		}
		next = sp.Span.End
		sp.Span.File = file.ID
		sp.Raw = file.Content[sp.Span.Start:sp.Span.End]
	}
	if int(next) != len(file.Content) {
		return nil, fmt.Errorf("span table covers %d bytes of %d", next, len(file.Content))
	}
	return &ParsedTemplate{file: file, spans: spans}, nil
}
