package lexer

import (
	"testing"

	"stencil/internal/diag"
	"stencil/internal/source"
)

// TestReporterAdapterCodeMapping: каждый вид отказа сканера и секвенсера
// ложится в Bag со своим кодом.
func TestReporterAdapterCodeMapping(t *testing.T) {
	cases := []struct {
		kind string
		want diag.Code
	}{
		{"stray-closing-delimiter", diag.ScanStrayClosingDelimiter},
		{"unterminated-tag", diag.ScanUnterminatedTag},
		{"incomplete-consumption", diag.ScanIncompleteConsumption},
		{"something-else", diag.UnknownCode},
	}

	for _, tc := range cases {
		bag := diag.NewBag(4)
		adapter := &ReporterAdapter{Bag: bag}
		adapter.Report(tc.kind, source.Span{Start: 1, End: 3}, "msg")

		items := bag.Items()
		if len(items) != 1 {
			t.Fatalf("%s: %d diagnostics, want 1", tc.kind, len(items))
		}
		if items[0].Code != tc.want {
			t.Errorf("%s: code = %v, want %v", tc.kind, items[0].Code, tc.want)
		}
		if items[0].Severity != diag.SevError {
			t.Errorf("%s: severity = %v, want SevError", tc.kind, items[0].Severity)
		}
	}

	// nil Bag — no-op
	(&ReporterAdapter{}).Report("unterminated-tag", source.Span{}, "msg")
}
