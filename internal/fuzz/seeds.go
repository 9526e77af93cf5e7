package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addDelimiterSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.tmpl файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".tmpl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addDelimiterSeeds покрывает скелет грамматики: все виды тегов, пустые тела,
// разделители внутри чужих тегов, ошибочные хвосты.
func addDelimiterSeeds(f *testing.F) {
	seeds := []string{
		"",
		"plain text only\n",
		"{%%}{{}}{##}",
		"{% stmt %} text {{ expr }} more {# note #}",
		"{{ a %} b }}",
		"{% multi\nline\nbody %}",
		"a }} stray",
		"{{ never closed",
		"{ % not a tag } }",
		"\xff\xfe{{ binary }}\x00",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
