package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stencil/internal/diag"
	"stencil/internal/diagfmt"
	"stencil/internal/driver"
	"stencil/internal/source"
)

// driverOptions собирает driver.Options из глобальных флагов.
func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	flags := cmd.Root().PersistentFlags()

	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts := driver.Options{MaxDiagnostics: maxDiagnostics}

	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if noCache {
		return opts, nil
	}

	cacheDir, err := flags.GetString("cache-dir")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	var cache *driver.DiskCache
	if cacheDir != "" {
		cache, err = driver.OpenDiskCacheAt(cacheDir)
	} else {
		cache, err = driver.OpenDiskCache("stencil")
	}
	if err != nil {
		// Кеш — оптимизация: недоступный каталог не должен ломать пайплайн.
		fmt.Fprintf(os.Stderr, "warning: scan cache disabled: %v\n", err)
		return opts, nil
	}
	opts.Cache = cache
	return opts, nil
}

// useColor решает, нужен ли цвет для вывода в f по флагу --color.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// printDiagnostics пишет диагностику в stderr, если она есть.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || (!bag.HasErrors() && !bag.HasWarnings()) {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: !quiet,
	})
}
