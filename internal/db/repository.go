package db

import (
	"context"
	"database/sql"
)

// Category is a row of the categories table.
type Category struct {
	ID            string
	NameKo        string
	NameEn        string
	DescriptionKo string
	DescriptionEn string
	Icon          string
	Color         string
	SortOrder     int32
}

// Entry is a row of the entries table. Tags, Translations and Pronunciation
// hold JSON text.
type Entry struct {
	ID            string
	Korean        string
	Romanization  string
	PartOfSpeech  string
	CategoryID    string
	Difficulty    string
	Frequency     string
	Tags          string
	Translations  string
	Pronunciation sql.NullString
}

type UpsertCategoryParams = Category

type UpsertEntryParams = Entry

type CategoryCount struct {
	CategoryID string
	Count      int64
}

// Repository defines the interface for database operations
type Repository interface {
	UpsertCategory(ctx context.Context, arg UpsertCategoryParams) error
	GetCategory(ctx context.Context, id string) (Category, error)

	UpsertEntry(ctx context.Context, arg UpsertEntryParams) error
	GetEntry(ctx context.Context, id string) (Entry, error)
	ListEntriesByCategory(ctx context.Context, categoryID string) ([]Entry, error)
	CountEntriesByCategory(ctx context.Context) ([]CategoryCount, error)

	// WithTx runs fn against a repository bound to a single transaction.
	// The transaction is committed if fn returns nil and rolled back otherwise.
	WithTx(ctx context.Context, fn func(repo Repository) error) error
	Close() error
}
