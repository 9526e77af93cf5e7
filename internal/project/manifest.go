// Package project loads the stencil.toml manifest that configures batch
// rendering of a template tree.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultExtensions are the template file extensions scanned when the
// manifest does not override them.
var DefaultExtensions = []string{".tmpl", ".stencil"}

// Manifest is a located and parsed stencil.toml.
type Manifest struct {
	Path   string // путь к stencil.toml
	Root   string // директория манифеста
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Render  RenderConfig  `toml:"render"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type RenderConfig struct {
	// Templates is the directory scanned for template files, relative to Root.
	Templates string `toml:"templates"`
	// Output is the directory rendered files are written to, relative to Root.
	Output string `toml:"output"`
	// Extensions overrides DefaultExtensions when non-empty.
	Extensions []string `toml:"extensions"`
	// Jobs bounds render parallelism; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

// Find walks up from startDir looking for stencil.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "stencil.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load walks up from startDir and parses the nearest stencil.toml.
// ok=false means no manifest exists, which is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := parseConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func parseConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package", "name") {
		return Config{}, fmt.Errorf("%s: missing [package] name", path)
	}
	return cfg, nil
}

// Extensions returns the effective template extension list.
func (m *Manifest) Extensions() []string {
	if len(m.Config.Render.Extensions) > 0 {
		return m.Config.Render.Extensions
	}
	return DefaultExtensions
}

// TemplatesDir returns the absolute template directory.
func (m *Manifest) TemplatesDir() string {
	return m.resolve(m.Config.Render.Templates, "templates")
}

// OutputDir returns the absolute output directory.
func (m *Manifest) OutputDir() string {
	return m.resolve(m.Config.Render.Output, "out")
}

func (m *Manifest) resolve(dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, dir)
}
