package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tlgen config files",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a default config file",
	Long: `Init writes the default settings to path. The format follows the
extension: .toml, .yaml or .yml.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteTemplate(args[0], forceInit); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "package:        %s\n", cfg.Package)
	fmt.Fprintf(w, "import_path:    %s\n", cfg.ImportPath)
	fmt.Fprintf(w, "exclude:        %q\n", cfg.Exclude)
	fmt.Fprintf(w, "reserved_words: %q\n", cfg.ReservedWords)
	fmt.Fprintf(w, "emit_methods:   %t\n", cfg.EmitMethods)
	return nil
}
