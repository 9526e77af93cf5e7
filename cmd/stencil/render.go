package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stencil/internal/driver"
	"stencil/internal/observ"
	"stencil/internal/project"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [file.tmpl]",
	Short: "Reconstruct templates from their spans",
	Long: `Render scans a template and writes the reconstruction: plain text
verbatim, tags replaced by their trimmed bodies.

With a file argument the result goes to stdout (or --output). Without
arguments render works in project mode: it finds the nearest stencil.toml
and renders the whole template directory into the output directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "write the result to a file instead of stdout")
	renderCmd.Flags().Int("jobs", 0, "parallel render workers in project mode (0 = GOMAXPROCS)")
}

func runRender(cmd *cobra.Command, args []string) error {
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return renderFile(cmd, args[0], opts)
	}
	return renderProject(cmd, opts)
}

func renderFile(cmd *cobra.Command, path string, opts driver.Options) error {
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}

	result, err := driver.Render(path, out, opts)
	if result != nil {
		printDiagnostics(cmd, result.Bag, result.FileSet)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

func renderProject(cmd *cobra.Command, opts driver.Options) error {
	manifest, ok, err := project.Load(".")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no file argument and no stencil.toml found")
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs == 0 {
		jobs = manifest.Config.Render.Jobs
	}

	timer := observ.NewTimer()
	phase := timer.Begin("render " + manifest.Config.Package.Name)

	fileSet, results, err := driver.RenderDir(
		cmd.Context(),
		manifest.TemplatesDir(),
		manifest.OutputDir(),
		manifest.Extensions(),
		opts,
		jobs,
	)
	timer.End(phase, fmt.Sprintf("%d templates", len(results)))
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	failed := 0
	for i := range results {
		res := &results[i]
		printDiagnostics(cmd, res.Bag, fileSet)
		if res.Bag.HasErrors() {
			failed++
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stderr, "rendered %d of %d templates into %s\n",
			len(results)-failed, len(results), manifest.OutputDir())
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if failed > 0 {
		return fmt.Errorf("%d template(s) failed", failed)
	}
	return nil
}
