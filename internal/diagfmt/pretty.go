package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"stencil/internal/diag"
	"stencil/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityColor(d.Severity, opts.Color)

	if d.Primary.Empty() && d.Primary.File == 0 && d.Primary.Start == 0 {
		// Диагностика без позиции (например, ошибка загрузки файла).
		fmt.Fprintf(w, "%s %s: %s\n", sev.Sprint(d.Severity), d.Code.ID(), d.Message)
		return
	}

	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := file.FormatPath(opts.PathMode.mode(), fs.BaseDir())

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col, sev.Sprint(d.Severity), d.Code.ID(), d.Message)

	writeContext(w, file, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", path, noteStart.Line, noteStart.Col, note.Msg)
		}
	}
}

// writeContext prints the source line with a caret underline, plus up to
// opts.Context preceding lines.
func writeContext(w io.Writer, file *source.File, sp source.Span, start source.LineCol, opts PrettyOpts) {
	first := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); first > ctx {
		first -= ctx
	} else {
		first = 1
	}

	for line := first; line < start.Line; line++ {
		fmt.Fprintf(w, "%5d | %s\n", line, file.GetLine(line))
	}

	text := file.GetLine(start.Line)
	fmt.Fprintf(w, "%5d | %s\n", start.Line, text)

	// Подчёркивание: ^ на первом байте, ~ дальше по ширине спана в строке.
	width := int(sp.Len())
	room := len(text) - int(start.Col) + 1
	if width > room {
		width = room
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", int(start.Col)-1), marker)
}

func severityColor(s diag.Severity, enabled bool) *color.Color {
	var c *color.Color
	switch s {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	if !enabled {
		c.DisableColor()
	}
	return c
}
