package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/compiler"
)

var translateCmd = &cobra.Command{
	Use:   "translate <schema.json> <output>",
	Short: "Generate Go packages from a schema",
	Long: `Translate parses the schema, validates it and writes the generated
packages as a txtar archive. The output file is only replaced when every
stage succeeds.`,
	Args: cobra.ExactArgs(2),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	res, err := compiler.Translate(args[0], args[1], opts)
	if merr := flushMetrics(); merr != nil && err == nil {
		err = merr
	}
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), args[1], res)
	return nil
}

func printResult(w io.Writer, output string, res *compiler.Result) {
	fmt.Fprintf(w, "Wrote %s (%s)\n", output, humanize.Bytes(uint64(res.Bytes)))
	fmt.Fprintf(w, "  Files:    %d\n", len(res.Files))
	fmt.Fprintf(w, "  Types:    %s\n", humanize.Comma(int64(res.Stats.Types)))
	fmt.Fprintf(w, "  Methods:  %s\n", humanize.Comma(int64(res.Stats.Methods)))
	if len(res.Unresolved) > 0 {
		fmt.Fprintf(w, "  Warning: unresolved types %q\n", res.Unresolved)
	}
}
