package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"stencil/internal/diag"
	"stencil/internal/lexer"
	"stencil/internal/source"
	"stencil/internal/template"
)

// DirResult содержит результат сканирования одного шаблона из директории
type DirResult struct {
	Path     string                   // путь к файлу
	FileID   source.FileID            // ID файла в FileSet
	Template *template.ParsedTemplate // nil при ошибке загрузки или скана
	Bag      *diag.Bag                // диагностики
	Output   string                   // путь результата (только RenderDir)
}

// listTemplateFiles возвращает отсортированный список файлов шаблонов
// в директории (по списку расширений)
func listTemplateFiles(dir string, exts []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir сканирует все шаблоны в директории параллельно.
// Ошибки отдельных файлов (загрузка, скан) не прерывают обход: они лежат
// в Bag соответствующего результата, Template остаётся nil.
func TokenizeDir(ctx context.Context, dir string, exts []string, opts Options, jobs int) (*source.FileSet, []DirResult, error) {
	files, err := listTemplateFiles(dir, exts)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагружаем все файлы последовательно: FileSet не потокобезопасен.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.maxDiagnostics())

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = DirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			tmpl, ok := opts.Cache.lookup(file)
			if !ok {
				var parseErr error
				tmpl, parseErr = template.Parse(file, lexer.Options{
					Reporter: &lexer.ReporterAdapter{Bag: bag},
				})
				if parseErr != nil {
					// Диагностика уже в bag; Template остаётся nil.
					results[i] = DirResult{Path: path, FileID: fileID, Bag: bag}
					return nil
				}
				opts.Cache.store(file, tmpl)
			}

			results[i] = DirResult{Path: path, FileID: fileID, Template: tmpl, Bag: bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// RenderDir сканирует и реконструирует все шаблоны из dir в outDir,
// сохраняя относительные пути и срезая расширение шаблона.
func RenderDir(ctx context.Context, dir, outDir string, exts []string, opts Options, jobs int) (*source.FileSet, []DirResult, error) {
	fileSet, results, err := TokenizeDir(ctx, dir, exts, opts, jobs)
	if err != nil {
		return fileSet, results, err
	}

	for i := range results {
		res := &results[i]
		if res.Template == nil {
			continue
		}

		outPath, err := outputPath(dir, outDir, res.Path, exts)
		if err != nil {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOWriteError,
				Message:  "failed to resolve output path: " + err.Error(),
			})
			continue
		}

		if err := writeRendered(res.Template, outPath); err != nil {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOWriteError,
				Message:  "failed to write output: " + err.Error(),
			})
			continue
		}
		res.Output = outPath
	}

	return fileSet, results, nil
}

// outputPath maps dir/sub/page.html.tmpl to outDir/sub/page.html.
func outputPath(dir, outDir, path string, exts []string) (string, error) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", err
	}
	for _, ext := range exts {
		if strings.HasSuffix(rel, ext) {
			rel = strings.TrimSuffix(rel, ext)
			break
		}
	}
	return filepath.Join(outDir, rel), nil
}

func writeRendered(tmpl *template.ParsedTemplate, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := tmpl.Instantiate(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
