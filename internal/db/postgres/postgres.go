package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/vocabmigrate/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New connects to PostgreSQL and applies the schema.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// If fn() panics, the normal err-check rollback below won't run.
	// recover() catches the panic so we can roll back the tx (releasing the db connection), then re-panic.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&Repository{pool: r.pool, q: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) UpsertCategory(ctx context.Context, arg db.UpsertCategoryParams) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO categories (id, name_ko, name_en, description_ko, description_en, icon, color, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name_ko = EXCLUDED.name_ko,
			name_en = EXCLUDED.name_en,
			description_ko = EXCLUDED.description_ko,
			description_en = EXCLUDED.description_en,
			icon = EXCLUDED.icon,
			color = EXCLUDED.color,
			sort_order = EXCLUDED.sort_order
	`, arg.ID, arg.NameKo, arg.NameEn, arg.DescriptionKo, arg.DescriptionEn, arg.Icon, arg.Color, arg.SortOrder)
	return err
}

func (r *Repository) GetCategory(ctx context.Context, id string) (db.Category, error) {
	var c db.Category
	err := r.q.QueryRow(ctx, `
		SELECT id, name_ko, name_en, description_ko, description_en, icon, color, sort_order
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.NameKo, &c.NameEn, &c.DescriptionKo, &c.DescriptionEn, &c.Icon, &c.Color, &c.SortOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Category{}, db.NotFound("categories", id)
	}
	return c, err
}

func (r *Repository) UpsertEntry(ctx context.Context, arg db.UpsertEntryParams) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO entries (id, korean, romanization, part_of_speech, category_id, difficulty, frequency, tags, translations, pronunciation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::text::jsonb, $9::text::jsonb, $10::text::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			korean = EXCLUDED.korean,
			romanization = EXCLUDED.romanization,
			part_of_speech = EXCLUDED.part_of_speech,
			category_id = EXCLUDED.category_id,
			difficulty = EXCLUDED.difficulty,
			frequency = EXCLUDED.frequency,
			tags = EXCLUDED.tags,
			translations = EXCLUDED.translations,
			pronunciation = EXCLUDED.pronunciation,
			updated_at = now()
	`, arg.ID, arg.Korean, arg.Romanization, arg.PartOfSpeech, arg.CategoryID, arg.Difficulty, arg.Frequency, arg.Tags, arg.Translations, arg.Pronunciation)
	return err
}

const selectEntry = `
	SELECT id, korean, romanization, part_of_speech, category_id, difficulty, frequency,
		tags::text, translations::text, pronunciation::text
	FROM entries
`

func (r *Repository) GetEntry(ctx context.Context, id string) (db.Entry, error) {
	e, err := scanEntry(r.q.QueryRow(ctx, selectEntry+"WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Entry{}, db.NotFound("entries", id)
	}
	return e, err
}

func (r *Repository) ListEntriesByCategory(ctx context.Context, categoryID string) ([]db.Entry, error) {
	rows, err := r.q.Query(ctx, selectEntry+"WHERE category_id = $1 ORDER BY id", categoryID)
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
	rows, err := r.q.Query(ctx, `
		SELECT category_id, COUNT(*) FROM entries
		GROUP BY category_id
		ORDER BY category_id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.CategoryCount, error) {
		var c db.CategoryCount
		err := row.Scan(&c.CategoryID, &c.Count)
		return c, err
	})
}

func scanEntry(row pgx.Row) (db.Entry, error) {
	var e db.Entry
	err := row.Scan(&e.ID, &e.Korean, &e.Romanization, &e.PartOfSpeech, &e.CategoryID,
		&e.Difficulty, &e.Frequency, &e.Tags, &e.Translations, &e.Pronunciation)
	return e, err
}
