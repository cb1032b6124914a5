package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/compiler"
	"github.com/danmuck/tlwire/internal/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check <schema.json>",
	Short: "Validate a schema without generating code",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	s, err := schema.Parse(data)
	if err != nil {
		return err
	}
	tree := compiler.Aggregate(s, opts.Exclude)
	if err := tree.Validate(compiler.NewTranslator(opts.Package, opts.ReservedWords...), opts.EmitMethods); err != nil {
		return err
	}

	stats := tree.Stats()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Schema valid (%s)\n", humanize.Bytes(uint64(len(data))))
	fmt.Fprintf(w, "  Modules:  %d\n", stats.Modules)
	fmt.Fprintf(w, "  Types:    %s (%d records, %d singletons, %d unions)\n",
		humanize.Comma(int64(stats.Types)), stats.Records, stats.Singletons, stats.Unions)
	fmt.Fprintf(w, "  Variants: %s\n", humanize.Comma(int64(stats.Variants)))
	fmt.Fprintf(w, "  Methods:  %s\n", humanize.Comma(int64(stats.Methods)))
	return nil
}
