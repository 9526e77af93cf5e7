// Package driver orchestrates the load → scan → render pipeline for the CLI:
// single files, parallel directory walks, and the scan disk cache.
package driver

import (
	"io"

	"stencil/internal/diag"
	"stencil/internal/lexer"
	"stencil/internal/source"
	"stencil/internal/template"
)

// Options configures a driver pipeline run.
type Options struct {
	MaxDiagnostics int
	Cache          *DiskCache // nil — без кеша
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// Result содержит результат сканирования одного шаблона
type Result struct {
	FileSet  *source.FileSet
	FileID   source.FileID
	Template *template.ParsedTemplate // nil при фатальной ошибке скана
	Bag      *diag.Bag
}

// Tokenize загружает и сканирует один шаблон.
// Фатальная ошибка скана возвращается вместе с Result: в Bag уже лежит
// диагностика с позицией, вызывающая сторона решает, как её показать.
func Tokenize(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	bag := diag.NewBag(opts.maxDiagnostics())

	fileID, err := fs.Load(path)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return &Result{FileSet: fs, Bag: bag}, err
	}
	file := fs.Get(fileID)

	// Кеш: таблица спанов по хешу содержимого.
	if tmpl, ok := opts.Cache.lookup(file); ok {
		return &Result{FileSet: fs, FileID: fileID, Template: tmpl, Bag: bag}, nil
	}

	tmpl, err := template.Parse(file, lexer.Options{
		Reporter: &lexer.ReporterAdapter{Bag: bag},
	})
	if err != nil {
		return &Result{FileSet: fs, FileID: fileID, Bag: bag}, err
	}

	opts.Cache.store(file, tmpl)
	return &Result{FileSet: fs, FileID: fileID, Template: tmpl, Bag: bag}, nil
}

// Render сканирует шаблон и пишет реконструкцию в w.
func Render(path string, w io.Writer, opts Options) (*Result, error) {
	result, err := Tokenize(path, opts)
	if err != nil {
		return result, err
	}
	if err := result.Template.Instantiate(w); err != nil {
		result.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.RenderSinkFailure,
			Message:  "output sink failed: " + err.Error(),
		})
		return result, err
	}
	return result, nil
}
