package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "page.tmpl")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}

	target := filepath.Join(baseDir, "nested", "page.tmpl")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("nested", "page.tmpl"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestBuildLineIndex(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []uint32
	}{
		{"empty", "", nil},
		{"no newline", "abc", nil},
		{"trailing newline", "a\nb\n", []uint32{1, 3}},
		{"leading newline", "\nabc", []uint32{0}},
		{"only newlines", "\n\n\n", []uint32{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLineIndex([]byte(tt.content))
			if len(got) != len(tt.want) {
				t.Fatalf("LineIdx length = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("LineIdx[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n" — перевод строки на позициях 2 и 5
	idx := buildLineIndex([]byte("ab\ncd\n"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // сам \n принадлежит первой строке
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1}, // позиция сразу после последнего \n
	}
	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d",
				tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}
}
