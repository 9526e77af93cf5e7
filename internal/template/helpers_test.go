package template_test

import (
	"testing"

	"stencil/internal/diag"
	"stencil/internal/source"
)

func newVirtualFile(t *testing.T, input string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tmpl", []byte(input))
	return fs, fs.Get(id)
}

func newBag() *diag.Bag {
	return diag.NewBag(16)
}
