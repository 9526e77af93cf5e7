// Package fuzztests houses Go fuzz harnesses that exercise the template
// scanning pipeline (source -> lexer -> template). Its goal is to smoke test
// robustness and guard against panics or invariant violations on arbitrary
// inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через сканер и реконструкцию.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/template,
// internal/testkit, internal/diag.

package fuzztests
