package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Batch job metrics. Commands write them to a node_exporter textfile at the
// end of a run.
var (
	FilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_files_processed_total",
		Help: "Category files processed by job and result",
	}, []string{"job", "result"})

	EntriesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_entries_processed_total",
		Help: "Entries read by job",
	}, []string{"job"})

	EntriesEnriched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vocab_entries_enriched_total",
		Help: "Entries that received romanization, dialogue and variations",
	})

	EntriesConverted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_entries_converted_total",
		Help: "Entries built from source dictionaries by source",
	}, []string{"source"})

	EntriesExported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_entries_exported_total",
		Help: "Entries written to the database by result",
	}, []string{"result"})

	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vocab_run_duration_seconds",
		Help:    "Wall time of a batch run",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"job"})

	LastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "vocab_last_success_timestamp_seconds",
		Help: "Unix time of the last successful run by job",
	}, []string{"job"})
)

// WriteTextfile dumps the default registry to path in the text exposition
// format. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
