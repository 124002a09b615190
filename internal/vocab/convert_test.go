package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugID(t *testing.T) {
	tests := []struct {
		korean string
		prefix string
		want   string
	}{
		{"안녕", "w", "w-annyeong"},
		{"김치", "", "gimchi"},
		{"눈 오는 날", "id", "id-nun-oneun-nal"},
		{"좋아!", "w", "w-jota"},
		{"Hello World", "ek", "ek-hello-world"},
		{"!!!", "w", "w-unknown"},
		{"", "", "unknown"},
		{"漢字", "cu", "cu-unknown"},
		{"신라", "", "sinla"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SlugID(tt.korean, tt.prefix), "SlugID(%q, %q)", tt.korean, tt.prefix)
	}
}

func TestSlugIDTruncates(t *testing.T) {
	long := strings.Repeat("가나다라마바사", 20)
	id := SlugID(long, "d-bod")
	assert.Len(t, id, maxIDLength)
	assert.True(t, strings.HasPrefix(id, "d-bod-gana"))
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("사과", "apple", "food", "noun", "w")

	assert.Equal(t, "w-sagwa", e.ID)
	assert.Equal(t, "사과", e.Korean)
	assert.Empty(t, e.Romanization)
	assert.Equal(t, "beginner", e.Difficulty)
	assert.Equal(t, "common", e.Frequency)
	assert.NotNil(t, e.Tags)
	assert.Equal(t, "사과의 뜻은 'apple'입니다.", e.Translations.Ko.Explanation)
	assert.Equal(t, "'사과' means 'apple' in English.", e.Translations.En.Explanation)
	assert.Equal(t, "apple", e.Translations.En.Word)
	assert.Equal(t, `We say "사과" in Korean.`, e.Translations.En.Examples.Beginner)
	assert.Empty(t, e.Translations.Ko.Variations.Formal)
	assert.Nil(t, e.Pronunciation)
}

func TestClassifyDomain(t *testing.T) {
	assert.Equal(t, "body", ClassifyDomain("body/skeletal"))
	assert.Equal(t, "coding", ClassifyDomain("technology/database"))
	assert.Equal(t, "daily-life", ClassifyDomain("home"))
	assert.Equal(t, "basic-words", ClassifyDomain("astronomy"))
	assert.Equal(t, "basic-words", ClassifyDomain(""))
}

func TestClassifyWord(t *testing.T) {
	category, pos := ClassifyWord("아이고")
	assert.Equal(t, "interjections", category)
	assert.Equal(t, "interjection", pos)

	category, pos = ClassifyWord("사과")
	assert.Equal(t, "basic-words", category)
	assert.Equal(t, "noun", pos)
}

func TestDeduplicate(t *testing.T) {
	in := []Entry{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "a"}, {ID: "b"}}

	out := Deduplicate(in)

	ids := make([]string, len(out))
	for i, e := range out {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"a", "b", "a-1", "a-2", "b-1"}, ids)
	assert.Equal(t, "a", in[2].ID, "input must not be modified")
}

func TestMergeNew(t *testing.T) {
	existing := []Entry{{ID: "a", Korean: "old"}, {ID: "b"}}
	fresh := []Entry{{ID: "a", Korean: "new"}, {ID: "c"}}

	out := MergeNew(existing, fresh)

	assert.Len(t, out, 3)
	assert.Equal(t, "old", out[0].Korean)
	assert.Equal(t, "c", out[2].ID)
}

func TestMergeCategories(t *testing.T) {
	existing := []Category{{ID: "food"}, {ID: "colors", Order: 3}}

	merged, added := MergeCategories(existing, NewCategories)

	assert.Len(t, merged, 2+len(NewCategories)-1)
	assert.NotContains(t, added, "colors")
	assert.Contains(t, added, "basic-words")
	assert.Equal(t, 3, merged[1].Order)

	_, again := MergeCategories(merged, NewCategories)
	assert.Empty(t, again)
}
