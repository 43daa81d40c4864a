package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orsonlang/orson-mode/internal/dialect"
	"github.com/orsonlang/orson-mode/internal/driver"
	"github.com/orsonlang/orson-mode/internal/spanfmt"
	"github.com/orsonlang/orson-mode/internal/ui"
)

// driverOptions assembles driver.Options from the persistent flags.
func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	flags := cmd.Root().PersistentFlags()

	var opts driver.Options

	dialectPath, err := flags.GetString("dialect")
	if err != nil {
		return opts, fmt.Errorf("failed to get dialect flag: %w", err)
	}
	if dialectPath != "" {
		d, err := dialect.Load(dialectPath)
		if err != nil {
			return opts, err
		}
		opts.Dialect = d
	}

	maxNotices, err := flags.GetInt("max-notices")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-notices flag: %w", err)
	}
	opts.MaxNotices = maxNotices

	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return opts, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if !noCache {
		// An unusable cache directory degrades to plain classification.
		if cache, err := driver.OpenSpanCache("orson-mode"); err == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}

// useColor resolves the --color tristate against the output terminal.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// printNotices writes accumulated notices to stderr unless --quiet is set.
func printNotices(cmd *cobra.Command, res *driver.Result) {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet || res.Bag.Len() == 0 {
		return
	}
	_ = spanfmt.FormatNoticesPretty(os.Stderr, res.Bag, res.FileSet)
}

// theme builds the class theme for the selected stream.
func theme(cmd *cobra.Command, f *os.File) ui.Theme {
	return ui.DefaultTheme(useColor(cmd, f))
}
