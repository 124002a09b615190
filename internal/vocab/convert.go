package vocab

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jusunglee/vocabmigrate/internal/transliteration"
	"github.com/samber/lo"
)

const unknownID = "unknown"

// SlugID derives a kebab-case ASCII id from a Korean headword.
func SlugID(korean, prefix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			return r
		}
		return -1
	}, korean)
	cleaned = strings.Join(strings.Fields(strings.ToLower(cleaned)), "-")

	romanized := transliteration.Romanize(cleaned)
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return -1
		}
	}, romanized)

	if id == "" {
		id = unknownID
	}
	if prefix != "" {
		id = prefix + "-" + id
	}
	if len(id) > maxIDLength {
		id = id[:maxIDLength]
	}
	return id
}

// NewEntry builds a fresh entry with templated explanations and examples.
// Romanization and variations are left empty for the enrich pass.
func NewEntry(korean, english, categoryID, partOfSpeech, prefix string) Entry {
	return Entry{
		ID:           SlugID(korean, prefix),
		Korean:       korean,
		Romanization: "",
		PartOfSpeech: partOfSpeech,
		CategoryID:   categoryID,
		Difficulty:   "beginner",
		Frequency:    "common",
		Tags:         []string{},
		Translations: Translations{
			Ko: &TranslationContent{
				Word:        korean,
				Explanation: fmt.Sprintf("%s의 뜻은 '%s'입니다.", korean, english),
				Examples: Examples{
					Beginner:     fmt.Sprintf("\"%s\"는 한국어로 말해요.", korean),
					Intermediate: fmt.Sprintf("한국에서는 \"%s\"를 자주 써요.", korean),
					Advanced:     fmt.Sprintf("\"%s\"는 한국어에서 중요한 표현입니다.", korean),
					Master:       fmt.Sprintf("\"%s\"의 문화적 맥락을 이해하면 더 자연스럽게 소통할 수 있습니다.", korean),
				},
				Variations: emptyVariations(),
			},
			En: &TranslationContent{
				Word:        english,
				Explanation: fmt.Sprintf("'%s' means '%s' in English.", korean, english),
				Examples: Examples{
					Beginner:     fmt.Sprintf("We say \"%s\" in Korean.", korean),
					Intermediate: fmt.Sprintf("In Korea, people often say \"%s\".", korean),
					Advanced:     fmt.Sprintf("\"%s\" is an important expression in Korean.", korean),
					Master:       fmt.Sprintf("Understanding the cultural context of \"%s\" makes communication more natural.", korean),
				},
				Variations: emptyVariations(),
			},
		},
	}
}

func emptyVariations() *Variations {
	return &Variations{Formal: []string{}, Casual: []string{}, Short: []string{}}
}

const defaultCategory = "basic-words"

var domainCategories = map[string]string{
	"arts":      "art",
	"emotions":  "emotions",
	"food":      "food",
	"shopping":  "shopping",
	"sports":    "sports",
	"education": "education",
	"home":      "daily-life",
	"fitness":   "sports",
	"books":     "culture",

	"medical":             "medical",
	"hospital":            "medical",
	"body-movements":      "body",
	"body/articular":      "body",
	"body/body-regions":   "body",
	"body/cardiovascular": "body",
	"body/digestive":      "body",
	"body/endocrine":      "body",
	"body/integumentary":  "body",
	"body/lymphatic":      "body",
	"body/muscular":       "body",
	"body/nervous":        "body",
	"body/reproductive":   "body",
	"body/respiratory":    "body",
	"body/sensory":        "body",
	"body/skeletal":       "body",
	"body/tissues":        "body",
	"body/urinary":        "body",

	"legal": "legal",

	"technology/architecture":         "coding",
	"technology/collaboration":        "coding",
	"technology/data-structures":      "coding",
	"technology/database":             "coding",
	"technology/devops-cloud":         "coding",
	"technology/fields-roles":         "coding",
	"technology/frameworks":           "coding",
	"technology/languages":            "coding",
	"technology/misc":                 "coding",
	"technology/monitoring":           "coding",
	"technology/network-web":          "coding",
	"technology/programming-concepts": "coding",
	"technology/security-testing":     "coding",
	"technology/tools":                "coding",
	"technology/ui-ux":                "coding",
	"technology/version-control":      "coding",
	"technology/web-development":      "coding",
}

// ClassifyDomain maps a source dictionary domain to a category id.
func ClassifyDomain(domain string) string {
	if c, ok := domainCategories[domain]; ok {
		return c
	}
	return defaultCategory
}

var interjections = lo.SliceToMap([]string{
	"와", "와우", "우와", "음", "음음", "아", "아아", "오오", "어", "어어", "에",
	"아이고", "아이쿠", "아이구", "헉", "헐", "어머", "어머나", "세상에", "맙소사",
	"오호", "오", "아하", "유레카",
}, func(w string) (string, struct{}) { return w, struct{}{} })

// ClassifyWord picks the category and part of speech for a plain word pair.
func ClassifyWord(korean string) (category, partOfSpeech string) {
	if _, ok := interjections[korean]; ok {
		return "interjections", "interjection"
	}
	return defaultCategory, "noun"
}

// Deduplicate suffixes repeated ids with -1, -2, ... in order of appearance.
func Deduplicate(entries []Entry) []Entry {
	seen := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if n, ok := seen[e.ID]; ok {
			seen[e.ID] = n + 1
			e.ID = fmt.Sprintf("%s-%d", e.ID, n+1)
		} else {
			seen[e.ID] = 0
		}
		out = append(out, e)
	}
	return out
}

// MergeNew keeps every existing entry and appends the fresh entries whose id
// is not already taken.
func MergeNew(existing, fresh []Entry) []Entry {
	ids := lo.SliceToMap(existing, func(e Entry) (string, struct{}) { return e.ID, struct{}{} })
	added := lo.Filter(fresh, func(e Entry, _ int) bool {
		_, ok := ids[e.ID]
		return !ok
	})
	return Deduplicate(append(append([]Entry{}, existing...), added...))
}
