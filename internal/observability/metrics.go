package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the tlgen metrics. It is private so generated-code users
// and tests do not collide with the default registry.
var Registry = prometheus.NewRegistry()

var (
	registerOnce sync.Once

	translations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tlwire",
			Subsystem: "compiler",
			Name:      "translations_total",
			Help:      "Schema translations by result.",
		},
		[]string{"result"},
	)
	translationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tlwire",
			Subsystem: "compiler",
			Name:      "translation_duration_seconds",
			Help:      "Schema translation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	stageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tlwire",
			Subsystem: "compiler",
			Name:      "stage_duration_seconds",
			Help:      "Duration of one compiler stage in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage", "success"},
	)
	emittedTypes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "tlwire",
			Subsystem: "compiler",
			Name:      "emitted_types",
			Help:      "Types emitted by the last successful translation, by kind.",
		},
		[]string{"kind"},
	)
	outputBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tlwire",
			Subsystem: "compiler",
			Name:      "output_bytes",
			Help:      "Size of the last generated archive.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		Registry.MustRegister(translations, translationDuration, stageDuration, emittedTypes, outputBytes)
	})
}

// RecordTranslation counts one translation. kinds and size are only applied
// when err is nil.
func RecordTranslation(err error, duration time.Duration, kinds map[string]int, size int) {
	RegisterMetrics()
	if err != nil {
		translations.WithLabelValues("error").Inc()
		return
	}
	translations.WithLabelValues("ok").Inc()
	translationDuration.Observe(duration.Seconds())
	for kind, n := range kinds {
		emittedTypes.WithLabelValues(kind).Set(float64(n))
	}
	outputBytes.Set(float64(size))
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, Registry)
}
