package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orsonlang/orson-mode/internal/driver"
	"github.com/orsonlang/orson-mode/internal/spanfmt"
)

var spansCmd = &cobra.Command{
	Use:   "spans [flags] file.ors",
	Short: "List the classified spans of a source file",
	Long:  `Spans classifies a source file and lists every classified span with its class, text, and position.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSpans,
}

func init() {
	spansCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runSpans(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
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

	switch format {
	case "pretty":
		return spanfmt.FormatSpansPretty(os.Stdout, res.Spans, res.Marks, res.FileSet)
	case "json":
		return spanfmt.FormatSpansJSON(os.Stdout, res.File, res.Spans, res.Marks, res.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
