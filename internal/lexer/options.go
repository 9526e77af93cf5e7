package lexer

import (
	"stencil/internal/source"
)

// Reporter — тонкий интерфейс, чтобы не тянуть diag сюда.
// Сканер **только вызывает** его с параметрами; форматирует diag внешний слой.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil — тогда ошибки не репортим (но скан всё равно падает)
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
