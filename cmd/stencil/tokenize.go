package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stencil/internal/diagfmt"
	"stencil/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.tmpl",
	Short: "Tokenize a template file",
	Long:  `Tokenize splits a template file into its typed spans`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	// Выполняем сканирование
	result, err := driver.Tokenize(filePath, opts)
	if result != nil {
		printDiagnostics(cmd, result.Bag, result.FileSet)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим спаны в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatSpansPretty(os.Stdout, result.Template.Spans(), result.FileSet)
	case "json":
		return diagfmt.FormatSpansJSON(os.Stdout, result.Template.Spans())
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
