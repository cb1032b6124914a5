package observability

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Stage times one unit of compiler work. Call the returned function with the
// stage's error when it finishes; the outcome is logged and observed.
func Stage(logger zerolog.Logger, name string) func(error) {
	RegisterMetrics()
	start := time.Now()
	return func(err error) {
		elapsed := time.Since(start)
		stageDuration.WithLabelValues(name, strconv.FormatBool(err == nil)).Observe(elapsed.Seconds())

		event := logger.Debug()
		if err != nil {
			event = logger.Warn().Err(err)
		}
		event.
			Str("stage", name).
			Dur("duration", elapsed).
			Msg("compiler_stage")
	}
}
