package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/orsonlang/orson-mode/internal/driver"
	"github.com/orsonlang/orson-mode/internal/spanfmt"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] file.ors...",
	Short: "Print source files with classified spans styled",
	Long:  `Highlight classifies each file and reprints it with token classes colored. With no arguments it reads stdin.`,
	RunE:  runHighlight,
}

func runHighlight(cmd *cobra.Command, args []string) error {
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	th := theme(cmd, os.Stdout)

	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		res := driver.ClassifyVirtual("<stdin>", content, opts)
		printNotices(cmd, res)
		return spanfmt.Highlight(os.Stdout, res.File, res.Spans, th)
	}

	results, err := driver.ClassifyFiles(args, opts)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	for _, res := range results {
		printNotices(cmd, res)
		if len(results) > 1 {
			fmt.Printf("==> %s <==\n", res.File.Path)
		}
		if err := spanfmt.Highlight(os.Stdout, res.File, res.Spans, th); err != nil {
			return err
		}
	}
	return nil
}
