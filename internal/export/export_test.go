package export

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jusunglee/vocabmigrate/internal/db"
	"github.com/jusunglee/vocabmigrate/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) db.Repository {
	t.Helper()
	repo, err := OpenRepository(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func enriched(korean, english, category string) vocab.Entry {
	e := vocab.NewEntry(korean, english, category, "noun", "w")
	vocab.EnrichEntry(&e)
	return e
}

func TestExporterRun(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	entries := []vocab.Entry{
		enriched("김치", "kimchi", "food"),
		enriched("밥", "rice", "food"),
		vocab.NewEntry("물", "water", "food", "noun", "w"),
	}
	x := &Exporter{Repo: repo}

	report, err := x.Run(ctx, vocab.NewCategories[:2], entries)
	require.NoError(t, err)
	assert.Equal(t, Report{Categories: 2, Exported: 2, Skipped: 1}, report)

	got, err := repo.GetEntry(ctx, "w-gimchi")
	require.NoError(t, err)
	assert.Equal(t, "gimchi", got.Romanization)
	assert.Equal(t, "[]", got.Tags)
	assert.True(t, got.Pronunciation.Valid)

	var tr vocab.Translations
	require.NoError(t, json.Unmarshal([]byte(got.Translations), &tr))
	assert.Equal(t, "kimchi", tr.En.Word)
	assert.Equal(t, "gimchi iteoyo?", tr.Ko.Dialogue.Dialogue[0].Romanization)

	_, err = repo.GetEntry(ctx, "w-mul")
	assert.True(t, db.IsNoRows(err))

	cat, err := repo.GetCategory(ctx, "colors")
	require.NoError(t, err)
	assert.Equal(t, "색상", cat.NameKo)
	assert.Equal(t, int32(25), cat.SortOrder)

	counts, err := repo.CountEntriesByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []db.CategoryCount{{CategoryID: "food", Count: 2}}, counts)
}

type failingRepo struct {
	db.Repository
	err error
}

func (f failingRepo) WithTx(ctx context.Context, fn func(db.Repository) error) error {
	return fn(f)
}

func (f failingRepo) UpsertCategory(context.Context, db.UpsertCategoryParams) error {
	return f.err
}

func TestExporterRunPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	x := &Exporter{Repo: failingRepo{err: boom}}

	_, err := x.Run(context.Background(), vocab.NewCategories[:1], nil)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "upserting category colors")
}

func TestEntryParamsNilTagsAndPronunciation(t *testing.T) {
	p, err := EntryParams(vocab.Entry{ID: "x"})
	require.NoError(t, err)
	assert.Equal(t, "[]", p.Tags)
	assert.False(t, p.Pronunciation.Valid)
}
