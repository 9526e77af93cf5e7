package fuzztests

import (
	"bytes"
	"errors"
	"testing"

	"stencil/internal/diag"
	"stencil/internal/lexer"
	"stencil/internal/source"
	"stencil/internal/template"
	"stencil/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// FuzzScanSpans гоняет сканер по произвольным байтам: не должно быть паник,
// после фатальной ошибки сканер обязан останавливаться.
func FuzzScanSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.tmpl", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
		for {
			tok, err := lx.Next()
			if err != nil {
				var scanErr *lexer.ScanError
				if !errors.As(err, &scanErr) {
					t.Fatalf("scanner returned a foreign error type: %v", err)
				}
				if !bag.HasErrors() {
					t.Fatal("fatal scan error was not reported into the bag")
				}
				return
			}
			if tok.Kind.IsEOF() {
				break
			}
		}
	})
}

// FuzzTemplateRoundTrip проверяет контракт спанов на произвольных байтах:
// успешный скан покрывает буфер без щелей, реконструкция не падает.
func FuzzTemplateRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		tmpl, err := template.New(input)
		if err != nil {
			// Фатальная ошибка скана — допустимый исход для мусорного входа.
			return
		}
		if err := testkit.CheckSpanInvariants(tmpl); err != nil {
			t.Fatalf("span invariants violated: %v", err)
		}

		var raw bytes.Buffer
		for _, sp := range tmpl.Spans() {
			raw.Write(sp.Raw)
		}
		if !bytes.Equal(raw.Bytes(), input) {
			t.Fatalf("raw concatenation does not reproduce the input:\n got %q\nwant %q",
				raw.Bytes(), input)
		}

		if err := tmpl.Instantiate(&bytes.Buffer{}); err != nil {
			t.Fatalf("instantiate into a memory sink failed: %v", err)
		}
	})
}
