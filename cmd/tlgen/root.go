package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/compiler"
	"github.com/danmuck/tlwire/internal/config"
	"github.com/danmuck/tlwire/internal/observability"
)

var (
	cfgFile     string
	metricsFile string
)

var rootCmd = &cobra.Command{
	Use:   "tlgen",
	Short: "Compile TL JSON schemas into Go wire types",
	Long: `tlgen reads a TL schema in JSON form and generates one Go package per
schema module. The generated types implement the tlwire/wire visitor
interfaces and encode to the TL binary format.

  tlgen check schema.json
  tlgen translate schema.json tl.txtar
  tlgen watch schema.json tl.txtar
  tlgen config init tlgen.toml`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (toml or yaml)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this textfile after running")
}

func loadOptions() (compiler.Options, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return compiler.Options{}, err
	}
	return config.CompilerOptions(cfg), nil
}

func flushMetrics() error {
	if metricsFile == "" {
		return nil
	}
	if err := observability.WriteTextfile(metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
