package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jusunglee/vocabmigrate/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite. The tables match the
// Cloudflare D1 layout used by the web app.
type Repository struct {
	db *sql.DB
	q  querier
}

// New opens (creating if needed) a SQLite database and applies the schema.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// A single connection keeps :memory: databases coherent and serialises
	// writers.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	slog.Debug("opened SQLite database", "path", dbPath)

	return &Repository{db: sqliteDB, q: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Category methods

func (r *Repository) UpsertCategory(ctx context.Context, arg db.UpsertCategoryParams) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO categories (id, name_ko, name_en, description_ko, description_en, icon, color, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name_ko = excluded.name_ko,
			name_en = excluded.name_en,
			description_ko = excluded.description_ko,
			description_en = excluded.description_en,
			icon = excluded.icon,
			color = excluded.color,
			sort_order = excluded.sort_order
	`, arg.ID, arg.NameKo, arg.NameEn, arg.DescriptionKo, arg.DescriptionEn, arg.Icon, arg.Color, arg.SortOrder)
	return err
}

func (r *Repository) GetCategory(ctx context.Context, id string) (db.Category, error) {
	var c db.Category
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name_ko, name_en, description_ko, description_en, icon, color, sort_order
		FROM categories
		WHERE id = ?
	`, id).Scan(&c.ID, &c.NameKo, &c.NameEn, &c.DescriptionKo, &c.DescriptionEn, &c.Icon, &c.Color, &c.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Category{}, db.NotFound("categories", id)
	}
	return c, err
}

// Entry methods

func (r *Repository) UpsertEntry(ctx context.Context, arg db.UpsertEntryParams) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO entries (id, korean, romanization, part_of_speech, category_id, difficulty, frequency, tags, translations, pronunciation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			korean = excluded.korean,
			romanization = excluded.romanization,
			part_of_speech = excluded.part_of_speech,
			category_id = excluded.category_id,
			difficulty = excluded.difficulty,
			frequency = excluded.frequency,
			tags = excluded.tags,
			translations = excluded.translations,
			pronunciation = excluded.pronunciation,
			updated_at = datetime('now')
	`, arg.ID, arg.Korean, arg.Romanization, arg.PartOfSpeech, arg.CategoryID, arg.Difficulty, arg.Frequency, arg.Tags, arg.Translations, arg.Pronunciation)
	return err
}

const selectEntry = `
	SELECT id, korean, romanization, part_of_speech, category_id, difficulty, frequency, tags, translations, pronunciation
	FROM entries
`

func (r *Repository) GetEntry(ctx context.Context, id string) (db.Entry, error) {
	row := r.q.QueryRowContext(ctx, selectEntry+"WHERE id = ?", id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Entry{}, db.NotFound("entries", id)
	}
	return e, err
}

func (r *Repository) ListEntriesByCategory(ctx context.Context, categoryID string) ([]db.Entry, error) {
	rows, err := r.q.QueryContext(ctx, selectEntry+"WHERE category_id = ? ORDER BY id", categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []db.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) CountEntriesByCategory(ctx context.Context) ([]db.CategoryCount, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT category_id, COUNT(*) FROM entries
		GROUP BY category_id
		ORDER BY category_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []db.CategoryCount
	for rows.Next() {
		var c db.CategoryCount
		if err := rows.Scan(&c.CategoryID, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (db.Entry, error) {
	var e db.Entry
	err := s.Scan(&e.ID, &e.Korean, &e.Romanization, &e.PartOfSpeech, &e.CategoryID,
		&e.Difficulty, &e.Frequency, &e.Tags, &e.Translations, &e.Pronunciation)
	return e, err
}
