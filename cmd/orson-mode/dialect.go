package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orsonlang/orson-mode/internal/diag"
	"github.com/orsonlang/orson-mode/internal/dialect"
)

var dialectCmd = &cobra.Command{
	Use:   "dialect",
	Short: "Inspect and validate mode descriptors",
}

var dialectShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active dialect descriptor",
	Args:  cobra.NoArgs,
	RunE:  runDialectShow,
}

var dialectCheckCmd = &cobra.Command{
	Use:   "check descriptor.toml",
	Short: "Validate a TOML dialect descriptor",
	Args:  cobra.ExactArgs(1),
	RunE:  runDialectCheck,
}

func init() {
	dialectCmd.AddCommand(dialectShowCmd)
	dialectCmd.AddCommand(dialectCheckCmd)
	dialectShowCmd.Flags().Bool("lexemes", false, "also list every lexeme per table")
}

func activeDialect(cmd *cobra.Command) (*dialect.Dialect, error) {
	path, err := cmd.Root().PersistentFlags().GetString("dialect")
	if err != nil {
		return nil, fmt.Errorf("failed to get dialect flag: %w", err)
	}
	if path == "" {
		return dialect.Orson(), nil
	}
	return dialect.Load(path)
}

func runDialectShow(cmd *cobra.Command, _ []string) error {
	d, err := activeDialect(cmd)
	if err != nil {
		return err
	}
	listLexemes, _ := cmd.Flags().GetBool("lexemes")

	fmt.Printf("dialect: %s\n", d.Name())
	fmt.Printf("comment: %q\n", string(d.CommentTrigger()))
	fmt.Printf("string:  %q\n", d.StringDelimiter())
	open, closing := d.Blocks()
	if open != "" {
		fmt.Printf("blocks:  %q %q\n", open, closing)
	}

	fmt.Println("tables:")
	for _, tab := range d.Tables() {
		fmt.Printf("  %-13s %3d lexemes\n", tab.Class().String(), tab.Len())
		if listLexemes {
			for _, lex := range tab.Lexemes() {
				fmt.Printf("    %s\n", lex)
			}
		}
	}
	return nil
}

func runDialectCheck(cmd *cobra.Command, args []string) error {
	d, err := dialect.Load(args[0])
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	empty := 0
	for _, tab := range d.Tables() {
		if tab.Len() == 0 {
			empty++
			if !quiet {
				fmt.Fprintf(os.Stderr, "info[%s] %s: table %s is empty\n",
					diag.DialectEmptyTable.ID(), args[0], tab.Class().String())
			}
		}
	}

	fmt.Printf("%s: ok (dialect %q, %d tables, %d empty)\n", args[0], d.Name(), len(d.Tables()), empty)
	return nil
}
