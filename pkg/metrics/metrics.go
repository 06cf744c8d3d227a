// Package metrics collects Prometheus metrics for conversions and exports
// them in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ssargent/palmdoc/pkg/charmap"
	"github.com/ssargent/palmdoc/pkg/convert"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for palmdoc
type Metrics struct {
	registry *prometheus.Registry

	// Conversion metrics
	conversionsTotal   *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec

	// Record metrics
	recordsTotal     *prometheus.CounterVec
	inputBytesTotal  *prometheus.CounterVec
	outputBytesTotal *prometheus.CounterVec
	compressionRatio prometheus.Histogram

	// Character mapping metrics
	mappingWarningsTotal *prometheus.CounterVec
}

// New creates all metrics on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		conversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palmdoc_conversions_total",
				Help: "Total number of file conversions",
			},
			[]string{"direction", "status"},
		),

		conversionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "palmdoc_conversion_duration_seconds",
				Help:    "File conversion duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"direction"},
		),

		recordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palmdoc_records_total",
				Help: "Total number of text records processed",
			},
			[]string{"direction"},
		),

		inputBytesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palmdoc_input_bytes_total",
				Help: "Record bytes fed to the codec",
			},
			[]string{"direction"},
		),

		outputBytesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palmdoc_output_bytes_total",
				Help: "Record bytes produced by the codec",
			},
			[]string{"direction"},
		),

		compressionRatio: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "palmdoc_record_compression_ratio",
				Help:    "Compressed size over uncompressed size per encoded record",
				Buckets: prometheus.LinearBuckets(0.1, 0.1, 11),
			},
		),

		mappingWarningsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "palmdoc_mapping_warnings_total",
				Help: "Characters skipped or substituted by the character mapper",
			},
			[]string{"kind"},
		),
	}
}

// Registry returns the registry holding every palmdoc metric
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordDone implements convert.Listener
func (m *Metrics) RecordDone(e convert.RecordEvent) {
	dir := string(e.Direction)
	m.recordsTotal.WithLabelValues(dir).Inc()
	m.inputBytesTotal.WithLabelValues(dir).Add(float64(e.In))
	m.outputBytesTotal.WithLabelValues(dir).Add(float64(e.Out))

	if e.Direction == convert.Encoding && e.In > 0 {
		m.compressionRatio.Observe(float64(e.Out) / float64(e.In))
	}
}

// RecordWarning counts a character mapping warning
func (m *Metrics) RecordWarning(w charmap.Warning) {
	m.mappingWarningsTotal.WithLabelValues(string(w.Kind)).Inc()
}

// RecordConversion records a finished encode or decode run
func (m *Metrics) RecordConversion(direction convert.Direction, success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.conversionsTotal.WithLabelValues(string(direction), status).Inc()
	m.conversionDuration.WithLabelValues(string(direction)).Observe(duration.Seconds())
}

// WriteTextfile writes every metric to path for the node_exporter textfile
// collector
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
