package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/orsonlang/orson-mode/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "orson-mode",
	Short: "Orson lexical classifier",
	Long:  `orson-mode classifies Orson source text into colored token spans`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(spansCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(dialectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress notices")
	rootCmd.PersistentFlags().Int("max-notices", 100, "maximum number of notices to show")
	rootCmd.PersistentFlags().String("dialect", "", "path to a TOML dialect descriptor (default: built-in orson)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable the span cache")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
