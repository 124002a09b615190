package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
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

	fs := ff.NewFlagSet("vocab-convert")
	var (
		sourceDir   = fs.StringLong("source-dir", "", "Root of the source dictionaries (words/, idioms/, expressions/, domains/)")
		targetDir   = fs.StringLong("target-dir", "", "Directory the category entry files are written to")
		categories  = fs.StringLong("categories", "", "Path of categories.json")
		metricsFile = fs.StringLong("metrics-file", "", "Write Prometheus textfile metrics here")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *sourceDir == "" {
		return errors.New("source-dir is required")
	}
	if *targetDir == "" {
		return errors.New("target-dir is required")
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

	start := time.Now()
	conv := &vocab.Converter{
		SourceDir:      *sourceDir,
		TargetDir:      *targetDir,
		CategoriesPath: *categories,
		Log:            log,
	}
	rep, err := conv.Run(ctx)
	metrics.RunDuration.WithLabelValues("convert").Observe(time.Since(start).Seconds())
	if err != nil {
		return errors.Join(fmt.Errorf("converting vocabulary: %w", err), metrics.WriteTextfile(*metricsFile))
	}
	metrics.LastSuccess.WithLabelValues("convert").SetToCurrentTime()

	summary := report.Summary{Title: "Vocabulary conversion"}
	for _, s := range rep.Sources {
		if s.Missing {
			summary.Warn(s.Name, "not found")
			continue
		}
		summary.Add(s.Name, "%d converted", s.Entries)
	}
	for _, c := range rep.Categories {
		summary.Add(c.CategoryID+".json", "%d entries", c.Entries)
	}
	if len(rep.NewCategories) > 0 {
		summary.Add("new categories", "%d", len(rep.NewCategories))
	}
	summary.Total = report.Row{Label: "Total", Value: fmt.Sprintf("%d entries", rep.Total)}
	fmt.Println(summary.Render())

	log.InfoContext(ctx, "convert complete", "entries", rep.Total, "elapsed", time.Since(start))
	return metrics.WriteTextfile(*metricsFile)
}
