package vocab

import "github.com/samber/lo"

// NewCategories are the categories introduced by the conversion.
var NewCategories = []Category{
	{ID: "colors", Name: LocalizedText{"색상", "Colors"}, Description: LocalizedText{"색상과 색채 관련 단어", "Color and hue related vocabulary"}, Icon: "◉", Color: "pink", Order: 25},
	{ID: "idioms", Name: LocalizedText{"관용구", "Idioms"}, Description: LocalizedText{"한국어 관용 표현과 속담", "Korean idiomatic expressions and proverbs"}, Icon: "≋", Color: "purple", Order: 26},
	{ID: "onomatopoeia", Name: LocalizedText{"의성어/의태어", "Onomatopoeia"}, Description: LocalizedText{"소리와 모양을 흉내내는 단어", "Sound and mimetic words"}, Icon: "∿", Color: "orange", Order: 27},
	{ID: "cultural-expressions", Name: LocalizedText{"문화 표현", "Cultural Expressions"}, Description: LocalizedText{"한국 문화 특유의 표현", "Uniquely Korean cultural expressions"}, Icon: "◈", Color: "red", Order: 28},
	{ID: "phrasal-verbs", Name: LocalizedText{"구동사", "Phrasal Verbs"}, Description: LocalizedText{"동사구와 복합 동사 표현", "Verb phrases and compound verb expressions"}, Icon: "⇢", Color: "teal", Order: 29},
	{ID: "compound-words", Name: LocalizedText{"복합어", "Compound Words"}, Description: LocalizedText{"두 단어 이상이 결합된 복합어", "Words formed by combining two or more words"}, Icon: "⊕", Color: "blue", Order: 30},
	{ID: "verb-stems", Name: LocalizedText{"동사 어간", "Verb Stems"}, Description: LocalizedText{"한국어 동사의 기본 어간", "Basic stems of Korean verbs"}, Icon: "∨", Color: "green", Order: 31},
	{ID: "body", Name: LocalizedText{"신체", "Body"}, Description: LocalizedText{"인체와 신체 부위 관련 단어", "Human body and anatomy vocabulary"}, Icon: "◯", Color: "red", Order: 32},
	{ID: "medical", Name: LocalizedText{"의학", "Medical"}, Description: LocalizedText{"의학과 건강 관련 단어", "Medical and health related vocabulary"}, Icon: "+", Color: "red", Order: 33},
	{ID: "legal", Name: LocalizedText{"법률", "Legal"}, Description: LocalizedText{"법률과 법적 용어", "Legal and law related vocabulary"}, Icon: "§", Color: "indigo", Order: 34},
	{ID: "education", Name: LocalizedText{"교육", "Education"}, Description: LocalizedText{"교육과 학습 관련 단어", "Education and learning vocabulary"}, Icon: "◻", Color: "blue", Order: 35},
	{ID: "interjections", Name: LocalizedText{"감탄사", "Interjections"}, Description: LocalizedText{"감정을 표현하는 감탄사", "Exclamations expressing emotions"}, Icon: "!", Color: "yellow", Order: 36},
	{ID: "basic-words", Name: LocalizedText{"기본 단어", "Basic Words"}, Description: LocalizedText{"일상에서 자주 쓰는 기본 단어", "Basic words commonly used in daily life"}, Icon: "·", Color: "gray", Order: 37},
}

// MergeCategories appends the categories from added whose id is not already
// in existing. It returns the merged list and the ids that were added.
func MergeCategories(existing, added []Category) ([]Category, []string) {
	ids := lo.SliceToMap(existing, func(c Category) (string, bool) { return c.ID, true })
	merged := append([]Category{}, existing...)
	var newIDs []string
	for _, c := range added {
		if ids[c.ID] {
			continue
		}
		ids[c.ID] = true
		merged = append(merged, c)
		newIDs = append(newIDs, c.ID)
	}
	return merged, newIDs
}
