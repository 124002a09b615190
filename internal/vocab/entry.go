package vocab

// Entry is one vocabulary item in the Context app entry schema.
type Entry struct {
	ID            string         `json:"id"`
	Korean        string         `json:"korean"`
	Romanization  string         `json:"romanization"`
	PartOfSpeech  string         `json:"partOfSpeech"`
	CategoryID    string         `json:"categoryId"`
	Difficulty    string         `json:"difficulty"`
	Frequency     string         `json:"frequency"`
	Tags          []string       `json:"tags"`
	Translations  Translations   `json:"translations"`
	Pronunciation *Pronunciation `json:"pronunciation,omitempty"`
}

type Translations struct {
	Ko *TranslationContent `json:"ko,omitempty"`
	En *TranslationContent `json:"en,omitempty"`
}

type TranslationContent struct {
	Word        string      `json:"word"`
	Explanation string      `json:"explanation"`
	Examples    Examples    `json:"examples"`
	Dialogue    *Dialogue   `json:"dialogue,omitempty"`
	Variations  *Variations `json:"variations,omitempty"`
}

// Examples holds one example sentence per difficulty level.
type Examples struct {
	Beginner     string `json:"beginner"`
	Intermediate string `json:"intermediate"`
	Advanced     string `json:"advanced"`
	Master       string `json:"master,omitempty"`
}

type Dialogue struct {
	Context  string         `json:"context"`
	Dialogue []DialogueLine `json:"dialogue"`
}

type DialogueLine struct {
	Speaker      string `json:"speaker"`
	Text         string `json:"text"`
	Romanization string `json:"romanization"`
	Translation  string `json:"translation"`
}

type Variations struct {
	Formal []string `json:"formal,omitzero"`
	Casual []string `json:"casual,omitzero"`
	Short  []string `json:"short,omitzero"`
}

type Pronunciation struct {
	Korean string `json:"korean"`
	IPA    string `json:"ipa,omitempty"`
}

type LocalizedText struct {
	Ko string `json:"ko"`
	En string `json:"en"`
}

// Category groups entries; each category is stored as <id>.json.
type Category struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Order       int           `json:"order"`
}

// Allowed enum values from the entry schema.
var (
	PartsOfSpeech = []string{
		"noun", "verb", "adjective", "adverb", "pronoun", "particle",
		"interjection", "conjunction", "determiner", "numeral", "suffix",
		"prefix", "phrase", "expression",
	}
	Difficulties = []string{"beginner", "intermediate", "advanced", "master"}
	Frequencies  = []string{"common", "uncommon", "rare"}
)
