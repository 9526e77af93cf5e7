package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"stencil/internal/source"
	"stencil/internal/token"
)

// SpanOutput представляет спан шаблона в JSON формате
type SpanOutput struct {
	Kind      string `json:"kind"`
	Text      string `json:"text,omitempty"`
	Body      string `json:"body,omitempty"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line"`
}

// FormatSpansPretty выводит спаны в человекочитаемом формате
func FormatSpansPretty(w io.Writer, spans []token.Token, fs *source.FileSet) error {
	for i, sp := range spans {
		startPos, endPos := fs.Resolve(sp.Span)

		fmt.Fprintf(w, "%3d: %-10s", i+1, sp.Kind.String())

		switch {
		case sp.Kind.IsTag():
			fmt.Fprintf(w, " %s", renderText(sp.Body))
		case len(sp.Raw) > 0:
			fmt.Fprintf(w, " %s", renderText(sp.Raw))
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		fmt.Fprintln(w)
	}
	return nil
}

// FormatSpansJSON выводит спаны в JSON формате
func FormatSpansJSON(w io.Writer, spans []token.Token) error {
	output := make([]SpanOutput, 0, len(spans))

	for _, sp := range spans {
		out := SpanOutput{
			Kind:      sp.Kind.String(),
			StartByte: sp.Span.Start,
			EndByte:   sp.Span.End,
			Line:      sp.Line,
		}
		if sp.Kind.IsTag() {
			out.Body = string(sp.Body)
		} else {
			out.Text = string(sp.Raw)
		}
		output = append(output, out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// renderText квотирует байты как UTF-8 текст; для невалидного UTF-8 —
// явная пометка с hex-дампом.
func renderText(b []byte) string {
	if utf8.Valid(b) {
		return fmt.Sprintf("%q", b)
	}
	return fmt.Sprintf("<invalid utf-8: % x>", b)
}
