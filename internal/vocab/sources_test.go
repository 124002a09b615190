package vocab

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadSourceKeyed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	writeFile(t, path, `{
		"koToEn": [{"ko": "빨강", "en": "red"}],
		"meta": {"version": 2},
		"enToKo": [{"ko": "파랑", "en": "blue"}]
	}`)

	items, err := LoadSource(path, ShapeKeyed)
	require.NoError(t, err)
	assert.Equal(t, []SourceItem{{Ko: "파랑", En: "blue"}, {Ko: "빨강", En: "red"}}, items)
}

func TestLoadSourceUnknownShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	writeFile(t, path, `[]`)

	_, err := LoadSource(path, Shape(42))
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestDomainPrefix(t *testing.T) {
	assert.Equal(t, "d-ske", domainPrefix("body/skeletal"))
	assert.Equal(t, "d-med", domainPrefix("medical"))
	assert.Equal(t, "d-ui", domainPrefix("technology/ui"))
	assert.Equal(t, "d-", domainPrefix(""))
}

func TestConverterRun(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	categoriesPath := filepath.Join(t.TempDir(), "categories.json")

	writeFile(t, filepath.Join(src, "words/ko-to-en.json"), `[
		{"ko": "사과", "en": "apple"},
		{"ko": "아이고", "en": "oh no"},
		{"ko": "사과", "en": "apology"},
		{"ko": "", "en": "skipped"}
	]`)
	writeFile(t, filepath.Join(src, "words/stems.json"), `[
		{"stem": "먹", "en": "eat", "type": "verb"},
		{"stem": "예쁘", "en": "pretty", "type": "adjective"}
	]`)
	writeFile(t, filepath.Join(src, "domains/all-domains.json"), `{
		"body": [{"ko": "뼈", "en": "bone", "domain": "body/skeletal"}]
	}`)
	require.NoError(t, SaveCategories(categoriesPath, []Category{{ID: "food", Order: 1}}))
	require.NoError(t, SaveEntries(filepath.Join(dst, "basic-words.json"), []Entry{
		{ID: "w-sagwa", Korean: "사과", Romanization: "sagwa"},
	}))

	conv := &Converter{SourceDir: src, TargetDir: dst, CategoriesPath: categoriesPath}
	report, err := conv.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, report.Sources, len(Sources))
	missing := 0
	for _, s := range report.Sources {
		if s.Missing {
			missing++
		}
	}
	assert.Equal(t, len(Sources)-3, missing)
	assert.Contains(t, report.NewCategories, "verb-stems")

	basic, err := LoadEntries(filepath.Join(dst, "basic-words.json"))
	require.NoError(t, err)
	// The existing w-sagwa wins; the duplicate becomes w-sagwa-1.
	require.Len(t, basic, 2)
	assert.Equal(t, "sagwa", basic[0].Romanization)
	assert.Equal(t, "w-sagwa-1", basic[1].ID)
	assert.Equal(t, "apology", basic[1].Translations.En.Word)

	interj, err := LoadEntries(filepath.Join(dst, "interjections.json"))
	require.NoError(t, err)
	require.Len(t, interj, 1)
	assert.Equal(t, "interjection", interj[0].PartOfSpeech)

	stems, err := LoadEntries(filepath.Join(dst, "verb-stems.json"))
	require.NoError(t, err)
	require.Len(t, stems, 2)
	assert.Equal(t, "verb", stems[0].PartOfSpeech)
	assert.Equal(t, "adjective", stems[1].PartOfSpeech)
	assert.Equal(t, "st-meok", stems[0].ID)

	body, err := LoadEntries(filepath.Join(dst, "body.json"))
	require.NoError(t, err)
	require.Len(t, body, 1)
	assert.Equal(t, "d-ske-ppyeo", body[0].ID)

	categories, err := LoadCategories(categoriesPath)
	require.NoError(t, err)
	assert.Len(t, categories, 1+len(NewCategories))

	// A second run adds nothing new.
	report, err = conv.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.NewCategories)
	basic, err = LoadEntries(filepath.Join(dst, "basic-words.json"))
	require.NoError(t, err)
	assert.Len(t, basic, 2)
}

func TestConverterRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := &Converter{
		SourceDir:      t.TempDir(),
		TargetDir:      t.TempDir(),
		CategoriesPath: filepath.Join(t.TempDir(), "categories.json"),
	}
	_, err := conv.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStemSourceType(t *testing.T) {
	stems, ok := lo.Find(Sources, func(s Source) bool { return s.Name == "stems" })
	require.True(t, ok)

	pos := func(record string) string {
		t.Helper()
		var it SourceItem
		require.NoError(t, json.Unmarshal([]byte(record), &it))
		e, ok := stems.Build(it)
		require.True(t, ok)
		return e.PartOfSpeech
	}

	assert.Equal(t, "verb", pos(`{"stem": "먹", "en": "eat"}`))
	assert.Equal(t, "verb", pos(`{"stem": "먹", "en": "eat", "type": "verb"}`))
	assert.Equal(t, "adjective", pos(`{"stem": "예쁘", "en": "pretty", "type": "adjective"}`))
	assert.Equal(t, "adjective", pos(`{"stem": "크", "en": "big", "type": ""}`))
}

const handWrittenEntry = `{
	"id": "w-yennal",
	"korean": "옛날",
	"hanja": "昔",
	"romanization": "yennal",
	"partOfSpeech": "noun",
	"categoryId": "basic-words",
	"difficulty": "beginner",
	"frequency": "common",
	"tags": ["time"],
	"translations": {
		"ko": {
			"word": "옛날",
			"explanation": "오래전",
			"examples": {"beginner": "옛날이에요.", "intermediate": "옛날에 살았어요.", "advanced": "옛날 이야기예요."},
			"notes": "keep me",
			"variations": {"formal": ["f"]}
		},
		"en": {
			"word": "old days",
			"explanation": "long ago",
			"examples": {"beginner": "a", "intermediate": "b", "advanced": "c"}
		}
	}
}`

func TestConverterRunKeepsExistingEntries(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	path := filepath.Join(dst, "basic-words.json")

	writeFile(t, filepath.Join(src, "words/ko-to-en.json"), `[{"ko": "사과", "en": "apple"}]`)
	writeFile(t, path, "["+handWrittenEntry+"]")

	conv := &Converter{SourceDir: src, TargetDir: dst, CategoriesPath: filepath.Join(t.TempDir(), "categories.json")}
	_, err := conv.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	file := gjson.ParseBytes(data)

	require.Equal(t, int64(2), file.Get("#").Int())
	assert.JSONEq(t, handWrittenEntry, file.Get("0").Raw)
	assert.Less(t, strings.Index(file.Get("0").Raw, "hanja"), strings.Index(file.Get("0").Raw, "romanization"))
	assert.Equal(t, "w-sagwa", file.Get("1.id").String())
	assert.NotContains(t, string(data), "null")
}
