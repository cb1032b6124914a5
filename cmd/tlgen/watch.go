package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/compiler"
	"github.com/danmuck/tlwire/internal/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch <schema.json> <output>",
	Short: "Regenerate the output whenever the schema changes",
	Long: `Watch translates once, then again on every write to the schema file.
A failed translation is logged and the previous output is kept. Stop with
Ctrl-C.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	w, err := compiler.NewWatcher(args[0], args[1], opts)
	if err != nil {
		return err
	}
	logger := logging.Logger("tlgen")
	w.OnResult(func(res *compiler.Result, err error) {
		if err != nil {
			return
		}
		printResult(cmd.OutOrStdout(), args[1], res)
		if err := flushMetrics(); err != nil {
			logger.Error().Err(err).Msg("metrics textfile")
		}
	})

	w.Rebuild()
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("stopping watch")
	case <-cmd.Context().Done():
	}
	return nil
}
