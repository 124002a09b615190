package vocab

import (
	"strings"

	"github.com/jusunglee/vocabmigrate/internal/transliteration"
)

// dialogueTemplate is a two-line exchange. {ko} and {en} are replaced with
// the headword and its English gloss.
type dialogueTemplate struct {
	contextKo, contextEn string
	aKo, bKo             string
	aEn, bEn             string
}

var categoryDialogues = map[string]dialogueTemplate{
	"greetings": {
		contextKo: "일상에서 인사하며", contextEn: "Greeting in daily life",
		aKo: "{ko}!", bKo: "네, {ko}!",
		aEn: "{en}!", bEn: "Yes, {en}!",
	},
	"food": {
		contextKo: "식당에서 주문하며", contextEn: "Ordering at a restaurant",
		aKo: "{ko} 있어요?", bKo: "네, {ko} 있어요.",
		aEn: "Do you have {en}?", bEn: "Yes, we have {en}.",
	},
	"emotions": {
		contextKo: "감정을 표현하며", contextEn: "Expressing emotions",
		aKo: "지금 기분이 어때요?", bKo: "{ko} 느낌이에요.",
		aEn: "How do you feel now?", bEn: "I feel {en}.",
	},
	"daily-life": {
		contextKo: "일상 대화에서", contextEn: "In daily conversation",
		aKo: "{ko}이/가 뭐예요?", bKo: "{ko}은/는 이거예요.",
		aEn: "What is {en}?", bEn: "This is {en}.",
	},
	"travel": {
		contextKo: "여행 중 대화에서", contextEn: "While traveling",
		aKo: "{ko} 어디 있어요?", bKo: "{ko}은/는 저기 있어요.",
		aEn: "Where is {en}?", bEn: "{en} is over there.",
	},
	"work": {
		contextKo: "직장에서 대화하며", contextEn: "At the workplace",
		aKo: "{ko} 처리했어요?", bKo: "네, {ko} 완료했어요.",
		aEn: "Did you handle {en}?", bEn: "Yes, I finished {en}.",
	},
	"shopping": {
		contextKo: "쇼핑하며", contextEn: "While shopping",
		aKo: "{ko} 얼마예요?", bKo: "{ko}은/는 만 원이에요.",
		aEn: "How much is {en}?", bEn: "{en} is 10,000 won.",
	},
}

var defaultDialogue = dialogueTemplate{
	contextKo: "일상 대화에서", contextEn: "In daily conversation",
	aKo: "{ko}이/가 뭐예요?", bKo: "{ko}은/는 {en}(이)에요.",
	aEn: `What is "{ko}"?`, bEn: `"{ko}" means "{en}".`,
}

// GenerateDialogue fills the category's template with the headword. Korean
// lines are romanized; English lines are translated back to the Korean line.
func GenerateDialogue(korean, english, categoryID string) (ko, en Dialogue) {
	tmpl, ok := categoryDialogues[categoryID]
	if !ok {
		tmpl = defaultDialogue
	}
	fill := strings.NewReplacer("{ko}", korean, "{en}", english).Replace
	aKo, bKo := fill(tmpl.aKo), fill(tmpl.bKo)
	aEn, bEn := fill(tmpl.aEn), fill(tmpl.bEn)

	ko = Dialogue{
		Context: tmpl.contextKo,
		Dialogue: []DialogueLine{
			{Speaker: "A", Text: aKo, Romanization: transliteration.Romanize(aKo), Translation: aEn},
			{Speaker: "B", Text: bKo, Romanization: transliteration.Romanize(bKo), Translation: bEn},
		},
	}
	en = Dialogue{
		Context: tmpl.contextEn,
		Dialogue: []DialogueLine{
			{Speaker: "A", Text: aEn, Translation: aKo},
			{Speaker: "B", Text: bEn, Translation: bKo},
		},
	}
	return ko, en
}

// GenerateVariations returns formal, casual and short forms in both
// languages.
func GenerateVariations(korean, english string) (ko, en Variations) {
	short := korean
	if r := []rune(korean); len(r) > 2 {
		short = string(r[:2])
	}
	shortEn := english
	if first, _, found := strings.Cut(english, " "); found {
		shortEn = first
	}

	ko = Variations{
		Formal: []string{korean + "입니다.", korean + "이/가 있습니다."},
		Casual: []string{korean + "이야.", korean + " 있어."},
		Short:  []string{short},
	}
	en = Variations{
		Formal: []string{"It is " + english + ".", "There is " + english + "."},
		Casual: []string{"It's " + english + ".", english + ", you know."},
		Short:  []string{shortEn},
	}
	return ko, en
}
