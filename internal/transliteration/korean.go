package transliteration

// Precomposed Hangul syllables occupy U+AC00..U+D7A3 and are laid out as
// lead*588 + vowel*28 + trailing.
const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3

	leadCount     = 19
	vowelCount    = 21
	trailingCount = 28
)

// Lead is the index of a syllable's initial consonant.
type Lead uint8

// Vowel is the index of a syllable's medial vowel.
type Vowel uint8

// Trailing is the index of a syllable's final consonant. TrailingNone means
// the syllable is open.
type Trailing uint8

const (
	LeadRieul Lead = 5  // ㄹ
	LeadIeung Lead = 11 // ㅇ, silent in initial position
)

const (
	TrailingNone  Trailing = 0
	TrailingNieun Trailing = 4 // ㄴ
	TrailingRieul Trailing = 8 // ㄹ
)

// Syllable is a decomposed Hangul syllable block.
type Syllable struct {
	Lead     Lead
	Vowel    Vowel
	Trailing Trailing
}

// Revised Romanization of Korean.
var (
	leadTable = [leadCount]string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	vowelTable = [vowelCount]string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	// Finals are unreleased, so clusters and most obstruents collapse.
	trailingTable = [trailingCount]string{
		"", "k", "k", "k", "n", "n", "n", "t", "l", "k",
		"m", "l", "l", "l", "p", "l", "m", "p", "p",
		"t", "t", "ng", "t", "t", "k", "t", "p", "t",
	}
)

// lateralLead is ㄹ after a ㄴ or ㄹ final.
const lateralLead = "l"

// Decompose splits a precomposed syllable block into its components. ok is
// false for any rune outside the syllable block range, including
// compatibility jamo.
func Decompose(r rune) (s Syllable, ok bool) {
	if r < hangulBase || r > hangulEnd {
		return Syllable{}, false
	}
	offset := int(r - hangulBase)
	return Syllable{
		Lead:     Lead(offset / (vowelCount * trailingCount)),
		Vowel:    Vowel((offset / trailingCount) % vowelCount),
		Trailing: Trailing(offset % trailingCount),
	}, true
}

// Compose is the inverse of Decompose.
func Compose(s Syllable) rune {
	return hangulBase + rune((int(s.Lead)*vowelCount+int(s.Vowel))*trailingCount+int(s.Trailing))
}

func (l Lead) String() string     { return leadTable[l] }
func (v Vowel) String() string    { return vowelTable[v] }
func (t Trailing) String() string { return trailingTable[t] }

// romanizeLead applies the cross-syllable rules for the lead consonant given
// the final of the syllable immediately before it.
func romanizeLead(lead Lead, prev Trailing) string {
	switch {
	case lead == LeadRieul && (prev == TrailingNieun || prev == TrailingRieul):
		return lateralLead
	case lead == LeadIeung && prev != TrailingNone:
		return ""
	default:
		return lead.String()
	}
}

// Romanize converts Hangul syllables in text to Latin letters. Everything
// else is copied through unchanged and breaks the liaison chain.
func Romanize(text string) string {
	var (
		out  = make([]byte, 0, len(text))
		prev = TrailingNone
	)
	for _, r := range text {
		s, ok := Decompose(r)
		if !ok {
			out = append(out, string(r)...)
			prev = TrailingNone
			continue
		}
		out = append(out, romanizeLead(s.Lead, prev)...)
		out = append(out, s.Vowel.String()...)
		out = append(out, s.Trailing.String()...)
		prev = s.Trailing
	}
	return string(out)
}
