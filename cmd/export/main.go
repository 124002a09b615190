package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/vocabmigrate/internal/export"
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

	fs := ff.NewFlagSet("vocab-export")
	var (
		entriesDir  = fs.StringLong("entries-dir", "", "Directory of category entry files")
		categories  = fs.StringLong("categories", "", "Path of categories.json")
		databaseURL = fs.StringLong("database-url", "sqlite://context.db", "SQLite path or PostgreSQL connection URL")
		metricsFile = fs.StringLong("metrics-file", "", "Write Prometheus textfile metrics here")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *entriesDir == "" {
		return errors.New("entries-dir is required")
	}
	if *categories == "" {
		return errors.New("categories is required")
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

	cats, err := vocab.LoadCategories(*categories)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}
	entries, err := loadAll(*entriesDir)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "loaded dataset", "categories", len(cats), "entries", len(entries))

	repo, err := export.OpenRepository(ctx, *databaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer repo.Close()

	start := time.Now()
	rep, err := (&export.Exporter{Repo: repo, Log: log}).Run(ctx, cats, entries)
	metrics.RunDuration.WithLabelValues("export").Observe(time.Since(start).Seconds())
	if err != nil {
		return errors.Join(fmt.Errorf("exporting: %w", err), metrics.WriteTextfile(*metricsFile))
	}
	metrics.LastSuccess.WithLabelValues("export").SetToCurrentTime()

	counts, err := repo.CountEntriesByCategory(ctx)
	if err != nil {
		return fmt.Errorf("counting entries: %w", err)
	}

	summary := report.Summary{Title: "Export to " + *databaseURL}
	for _, c := range counts {
		summary.Add(c.CategoryID, "%d entries", c.Count)
	}
	if rep.Skipped > 0 {
		summary.Warn("skipped", "%d invalid entries", rep.Skipped)
	}
	summary.Total = report.Row{Label: "Total", Value: fmt.Sprintf("%d entries, %d categories", rep.Exported, rep.Categories)}
	fmt.Println(summary.Render())

	return metrics.WriteTextfile(*metricsFile)
}

func loadAll(dir string) ([]vocab.Entry, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	slices.Sort(files)

	var all []vocab.Entry
	for _, f := range files {
		entries, err := vocab.LoadEntries(f)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}
