package lexer

import (
	"stencil/internal/diag"
	"stencil/internal/source"
)

// ReporterAdapter адаптирует diag.Bag для использования в сканере
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Report maps the scanner's thin failure kinds onto diag codes and stores the
// diagnostic in the bag.
func (r *ReporterAdapter) Report(kind string, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	code := diag.UnknownCode
	switch kind {
	case "stray-closing-delimiter":
		code = diag.ScanStrayClosingDelimiter
	case "unterminated-tag":
		code = diag.ScanUnterminatedTag
	case "incomplete-consumption":
		code = diag.ScanIncompleteConsumption
	}
	r.Bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
