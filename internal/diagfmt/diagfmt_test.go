package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"stencil/internal/diag"
	"stencil/internal/lexer"
	"stencil/internal/source"
	"stencil/internal/template"
)

func scanFixture(t *testing.T, content string) (*source.FileSet, *template.ParsedTemplate) {
	t.Helper()
	fs := source.NewFileSetWithBase("")
	fileID := fs.AddVirtual("test.tmpl", []byte(content))
	tmpl, err := template.Parse(fs.Get(fileID), lexer.Options{})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return fs, tmpl
}

func TestFormatSpansPretty(t *testing.T) {
	fs, tmpl := scanFixture(t, "hi {{ name }}\n")

	var buf bytes.Buffer
	if err := FormatSpansPretty(&buf, tmpl.Spans(), fs); err != nil {
		t.Fatalf("FormatSpansPretty failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Plain") || !strings.Contains(lines[0], `"hi "`) {
		t.Errorf("plain line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "TagCurly") || !strings.Contains(lines[1], `"name"`) {
		t.Errorf("tag line = %q", lines[1])
	}
	// позиции 1-based
	if !strings.Contains(lines[1], "at 1:4-1:14") {
		t.Errorf("tag position = %q", lines[1])
	}
}

func TestFormatSpansJSON(t *testing.T) {
	fs, tmpl := scanFixture(t, "a{% b %}c")
	_ = fs

	var buf bytes.Buffer
	if err := FormatSpansJSON(&buf, tmpl.Spans()); err != nil {
		t.Fatalf("FormatSpansJSON failed: %v", err)
	}

	var out []SpanOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode json: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(out))
	}
	if out[0].Kind != "Plain" || out[0].Text != "a" {
		t.Errorf("span 0 = %+v", out[0])
	}
	if out[1].Kind != "TagPercent" || out[1].Body != "b" || out[1].StartByte != 1 || out[1].EndByte != 8 {
		t.Errorf("span 1 = %+v", out[1])
	}
	if out[2].Line != 1 {
		t.Errorf("span 2 line = %d", out[2].Line)
	}
}

// TestPrettyDiagnostic проверяет формат вывода диагностики с позицией и
// подчёркиванием.
func TestPrettyDiagnostic(t *testing.T) {
	fs := source.NewFileSetWithBase("")
	fileID := fs.AddVirtual("bad.tmpl", []byte("text }} tail\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ScanStrayClosingDelimiter,
		Message:  "closing delimiter without a matching opener",
		Primary:  source.Span{File: fileID, Start: 5, End: 7},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, Context: 0})

	out := buf.String()
	if !strings.Contains(out, "bad.tmpl:1:6:") {
		t.Errorf("missing 1-based position, got:\n%s", out)
	}
	if !strings.Contains(out, "SCAN1001") {
		t.Errorf("missing diagnostic code, got:\n%s", out)
	}
	if !strings.Contains(out, "^~") {
		t.Errorf("missing caret underline, got:\n%s", out)
	}
}

// TestPrettyWithoutPosition: диагностика без спана (ошибка загрузки файла)
// печатается одной строкой.
func TestPrettyWithoutPosition(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: no such file",
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	out := buf.String()
	if !strings.Contains(out, "IO4001") || !strings.Contains(out, "no such file") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, " | ") {
		t.Errorf("no-position diagnostic must not print context:\n%s", out)
	}
}
