package observability

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/tlwire/internal/testutil/testlog"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()
}

func TestRecordTranslation(t *testing.T) {
	testlog.Start(t)
	okBefore := testutil.ToFloat64(translations.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(translations.WithLabelValues("error"))

	RecordTranslation(nil, 5*time.Millisecond, map[string]int{"union": 3, "record": 7}, 4096)
	RecordTranslation(errors.New("boom"), time.Millisecond, map[string]int{"union": 99}, 1)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(translations.WithLabelValues("ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(translations.WithLabelValues("error")))
	assert.Equal(t, float64(3), testutil.ToFloat64(emittedTypes.WithLabelValues("union")))
	assert.Equal(t, float64(7), testutil.ToFloat64(emittedTypes.WithLabelValues("record")))
	assert.Equal(t, float64(4096), testutil.ToFloat64(outputBytes))
}

func TestStageObservesDuration(t *testing.T) {
	testlog.Start(t)
	before := testutil.CollectAndCount(stageDuration)

	Stage(log.Logger, "test-stage-ok")(nil)
	Stage(log.Logger, "test-stage-err")(errors.New("failed"))

	assert.Equal(t, before+2, testutil.CollectAndCount(stageDuration))
}

func TestWriteTextfile(t *testing.T) {
	testlog.Start(t)
	RecordTranslation(nil, time.Millisecond, map[string]int{"singleton": 1}, 8)

	path := filepath.Join(t.TempDir(), "tlgen.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tlwire_compiler_translations_total")
	assert.Contains(t, string(data), "tlwire_compiler_output_bytes")
}
