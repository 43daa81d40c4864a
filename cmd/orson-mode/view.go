package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orsonlang/orson-mode/internal/driver"
	"github.com/orsonlang/orson-mode/internal/spanfmt"
	"github.com/orsonlang/orson-mode/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file.ors",
	Short: "Browse a highlighted source file in a pager",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("view needs a terminal; use highlight for piped output")
	}

	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	res, err := driver.ClassifyFile(args[0], opts)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	printNotices(cmd, res)

	content := spanfmt.HighlightString(res.File, res.Spans, theme(cmd, os.Stdout))
	return ui.RunPager(res.File.Path, content)
}
