package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/jusunglee/vocabmigrate/internal/metrics"
	"github.com/jusunglee/vocabmigrate/internal/transliteration"
	"golang.org/x/sync/errgroup"
)

// EnrichEntry fills in romanization, dialogue, variations and pronunciation
// for an entry that has no romanization yet. Entries that already have one
// are left alone and false is returned.
func EnrichEntry(e *Entry) bool {
	if e.Romanization != "" {
		return false
	}

	english := ""
	if e.Translations.En != nil {
		english = e.Translations.En.Word
	}
	category := e.CategoryID
	if category == "" {
		category = defaultCategory
	}

	romanized := transliteration.Romanize(e.Korean)
	e.Romanization = romanized

	dialogueKo, dialogueEn := GenerateDialogue(e.Korean, english, category)
	variationsKo, variationsEn := GenerateVariations(e.Korean, english)
	if ko := e.Translations.Ko; ko != nil {
		ko.Dialogue = &dialogueKo
		ko.Variations = &variationsKo
	}
	if en := e.Translations.En; en != nil {
		en.Dialogue = &dialogueEn
		en.Variations = &variationsEn
	}

	e.Pronunciation = &Pronunciation{
		Korean: "[" + e.Korean + "]",
		IPA:    "[" + romanized + "]",
	}
	return true
}

// FileResult is the outcome of enriching one category file.
type FileResult struct {
	File     string
	Entries  int
	Enriched int
}

type EnrichReport struct {
	Files    []FileResult
	Entries  int
	Enriched int
}

// Enricher back-fills derived fields on every category file in Dir.
type Enricher struct {
	Dir     string
	Workers int
	Log     *slog.Logger
}

// Run processes the category files concurrently. A file is only rewritten
// when at least one of its entries changed.
func (e *Enricher) Run(ctx context.Context) (EnrichReport, error) {
	files, err := filepath.Glob(filepath.Join(e.Dir, "*.json"))
	if err != nil {
		return EnrichReport{}, fmt.Errorf("listing %s: %w", e.Dir, err)
	}
	slices.Sort(files)

	log := e.Log
	if log == nil {
		log = slog.Default()
	}

	results := make([]FileResult, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(e.Workers, 1))
	for i, path := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := EnrichFile(path)
			if err != nil {
				metrics.FilesProcessed.WithLabelValues("enrich", "error").Inc()
				return fmt.Errorf("enriching %s: %w", filepath.Base(path), err)
			}
			results[i] = res
			log.InfoContext(ctx, "enriched file", "file", res.File, "entries", res.Entries, "enriched", res.Enriched)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return EnrichReport{}, err
	}

	report := EnrichReport{Files: results}
	for _, r := range results {
		report.Entries += r.Entries
		report.Enriched += r.Enriched
	}
	return report, nil
}

// EnrichFile enriches the entries of a single category file in place.
func EnrichFile(path string) (FileResult, error) {
	file, err := LoadEntryFile(path)
	if err != nil {
		return FileResult{}, err
	}

	res := FileResult{File: filepath.Base(path), Entries: len(file.Entries)}
	for i := range file.Entries {
		if EnrichEntry(&file.Entries[i]) {
			res.Enriched++
		}
	}
	metrics.EntriesProcessed.WithLabelValues("enrich").Add(float64(res.Entries))

	if res.Enriched == 0 {
		metrics.FilesProcessed.WithLabelValues("enrich", "unchanged").Inc()
		return res, nil
	}
	if err := file.Save(path); err != nil {
		return FileResult{}, err
	}
	metrics.EntriesEnriched.Add(float64(res.Enriched))
	metrics.FilesProcessed.WithLabelValues("enrich", "written").Inc()
	return res, nil
}
