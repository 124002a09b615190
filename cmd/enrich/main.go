package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/vocabmigrate/internal/logger"
	"github.com/jusunglee/vocabmigrate/internal/metrics"
	"github.com/jusunglee/vocabmigrate/internal/report"
	"github.com/jusunglee/vocabmigrate/internal/vocab"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("vocab-enrich")
	var (
		entriesDir  = fs.StringLong("entries-dir", "", "Directory of category entry files")
		workers     = fs.IntLong("workers", runtime.NumCPU(), "Files processed concurrently")
		metricsFile = fs.StringLong("metrics-file", "", "Write Prometheus textfile metrics here")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *entriesDir == "" {
		return errors.New("entries-dir is required")
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	log := logger.New()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	start := time.Now()
	enricher := &vocab.Enricher{Dir: *entriesDir, Workers: *workers, Log: log}
	rep, err := enricher.Run(ctx)
	metrics.RunDuration.WithLabelValues("enrich").Observe(time.Since(start).Seconds())
	if err != nil {
		return errors.Join(fmt.Errorf("enriching entries: %w", err), metrics.WriteTextfile(*metricsFile))
	}
	metrics.LastSuccess.WithLabelValues("enrich").SetToCurrentTime()

	summary := report.Summary{Title: "Enriching entries with romanization, dialogue, and variations"}
	for _, f := range rep.Files {
		if f.Enriched > 0 {
			summary.Add(f.File, "%d entries, %d enriched", f.Entries, f.Enriched)
		} else {
			summary.Add(f.File, "%d entries", f.Entries)
		}
	}
	summary.Total = report.Row{Label: "Total", Value: fmt.Sprintf("%d entries processed, %d enriched", rep.Entries, rep.Enriched)}
	fmt.Println(summary.Render())

	log.InfoContext(ctx, "enrich complete", "entries", rep.Entries, "enriched", rep.Enriched, "elapsed", time.Since(start))
	return metrics.WriteTextfile(*metricsFile)
}
