package adapter

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	m "gooze.dev/pkg/lit/internal/model"
)

const metricsNamespace = "lit"

// MetricsWriter exports scan statistics.
type MetricsWriter interface {
	WriteMetrics(ctx context.Context, path m.Path, result m.ScanResult) error
}

// TextfileMetricsWriter writes metrics in the Prometheus text format, for the
// node_exporter textfile collector or CI artifacts.
type TextfileMetricsWriter struct{}

// NewTextfileMetricsWriter constructs a TextfileMetricsWriter.
func NewTextfileMetricsWriter() *TextfileMetricsWriter {
	return &TextfileMetricsWriter{}
}

// ScanRegistry builds a registry holding the gauges for result.
func ScanRegistry(result m.ScanResult) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"locale": result.Locale}

	gauge := func(name, help string, value int) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
		g.Set(float64(value))
		registry.MustRegister(g)
	}

	gauge("files_scanned", "Number of source files scanned.", len(result.Files))
	gauge("call_sites", "Number of translation call sites found.", result.CallSites)
	gauge("keys_reported", "Number of distinct literal keys found.", result.Reported.Len())
	gauge("keys_missing", "Number of keys missing from the target locale.", result.Missing.Len())
	gauge("dynamic_keys", "Number of call sites whose key could not be resolved.", len(result.Warnings))

	return registry
}

// WriteMetrics writes the scan gauges to path.
func (w *TextfileMetricsWriter) WriteMetrics(ctx context.Context, path m.Path, result m.ScanResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := prometheus.WriteToTextfile(string(path), ScanRegistry(result)); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}
