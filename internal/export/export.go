package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jusunglee/vocabmigrate/internal/db"
	"github.com/jusunglee/vocabmigrate/internal/db/postgres"
	"github.com/jusunglee/vocabmigrate/internal/db/sqlite"
	"github.com/jusunglee/vocabmigrate/internal/metrics"
	"github.com/jusunglee/vocabmigrate/internal/vocab"
	"github.com/samber/lo"
)

// OpenRepository picks a backend from the URL scheme. postgres:// and
// postgresql:// go to PostgreSQL, everything else is treated as a SQLite
// path (with or without sqlite://).
func OpenRepository(ctx context.Context, databaseURL string) (db.Repository, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgres.New(ctx, databaseURL)
	}
	return sqlite.New(ctx, databaseURL)
}

type Report struct {
	Categories int
	Exported   int
	Skipped    int
}

// Exporter loads categories and entries into a database.
type Exporter struct {
	Repo db.Repository
	Log  *slog.Logger
}

// Run upserts all categories and every valid entry in one transaction.
// Entries that fail validation are logged and skipped.
func (x *Exporter) Run(ctx context.Context, categories []vocab.Category, entries []vocab.Entry) (Report, error) {
	log := x.Log
	if log == nil {
		log = slog.Default()
	}

	valid := lo.Filter(entries, func(e vocab.Entry, _ int) bool {
		if err := vocab.Validate(e); err != nil {
			log.WarnContext(ctx, "skipping invalid entry", "id", e.ID, "error", err)
			return false
		}
		return true
	})
	report := Report{Categories: len(categories), Skipped: len(entries) - len(valid)}

	params := make([]db.UpsertEntryParams, 0, len(valid))
	for _, e := range valid {
		p, err := EntryParams(e)
		if err != nil {
			return Report{}, err
		}
		params = append(params, p)
	}

	err := x.Repo.WithTx(ctx, func(tx db.Repository) error {
		for _, c := range categories {
			if err := tx.UpsertCategory(ctx, CategoryParams(c)); err != nil {
				return fmt.Errorf("upserting category %s: %w", c.ID, err)
			}
		}
		for _, p := range params {
			if err := tx.UpsertEntry(ctx, p); err != nil {
				return fmt.Errorf("upserting entry %s: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		metrics.EntriesExported.WithLabelValues("error").Add(float64(len(params)))
		return Report{}, err
	}

	report.Exported = len(params)
	metrics.EntriesExported.WithLabelValues("exported").Add(float64(report.Exported))
	metrics.EntriesExported.WithLabelValues("skipped").Add(float64(report.Skipped))
	return report, nil
}

func CategoryParams(c vocab.Category) db.UpsertCategoryParams {
	return db.UpsertCategoryParams{
		ID:            c.ID,
		NameKo:        c.Name.Ko,
		NameEn:        c.Name.En,
		DescriptionKo: c.Description.Ko,
		DescriptionEn: c.Description.En,
		Icon:          c.Icon,
		Color:         c.Color,
		SortOrder:     int32(c.Order),
	}
}

// EntryParams flattens an entry into a row, encoding the nested parts as
// JSON text.
func EntryParams(e vocab.Entry) (db.UpsertEntryParams, error) {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return db.UpsertEntryParams{}, fmt.Errorf("encoding tags of %s: %w", e.ID, err)
	}
	translationsJSON, err := json.Marshal(e.Translations)
	if err != nil {
		return db.UpsertEntryParams{}, fmt.Errorf("encoding translations of %s: %w", e.ID, err)
	}
	var pronunciation sql.NullString
	if e.Pronunciation != nil {
		b, err := json.Marshal(e.Pronunciation)
		if err != nil {
			return db.UpsertEntryParams{}, fmt.Errorf("encoding pronunciation of %s: %w", e.ID, err)
		}
		pronunciation = sql.NullString{String: string(b), Valid: true}
	}

	return db.UpsertEntryParams{
		ID:            e.ID,
		Korean:        e.Korean,
		Romanization:  e.Romanization,
		PartOfSpeech:  e.PartOfSpeech,
		CategoryID:    e.CategoryID,
		Difficulty:    e.Difficulty,
		Frequency:     e.Frequency,
		Tags:          string(tagsJSON),
		Translations:  string(translationsJSON),
		Pronunciation: pronunciation,
	}, nil
}
