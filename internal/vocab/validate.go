package vocab

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

var (
	ErrInvalidEntry  = errors.New("invalid entry")
	ErrUnknownSource = errors.New("unknown source shape")
)

const maxIDLength = 100

// Validate checks e against the entry schema and returns every problem found,
// joined and wrapped in ErrInvalidEntry. English dialogue lines carry no
// romanization, so only Korean lines are required to have one.
func Validate(e Entry) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if n := utf8.RuneCountInString(e.ID); n == 0 || n > maxIDLength {
		add("id: length %d not in 1..%d", n, maxIDLength)
	}
	if e.Korean == "" {
		add("korean: empty")
	}
	if e.Romanization == "" {
		add("romanization: empty")
	}
	if e.CategoryID == "" {
		add("categoryId: empty")
	}
	if !slices.Contains(PartsOfSpeech, e.PartOfSpeech) {
		add("partOfSpeech: %q not allowed", e.PartOfSpeech)
	}
	if !slices.Contains(Difficulties, e.Difficulty) {
		add("difficulty: %q not allowed", e.Difficulty)
	}
	if !slices.Contains(Frequencies, e.Frequency) {
		add("frequency: %q not allowed", e.Frequency)
	}
	if e.Pronunciation == nil || e.Pronunciation.Korean == "" {
		add("pronunciation: missing")
	}

	errs = append(errs, validateContent("translations.ko", e.Translations.Ko, true)...)
	errs = append(errs, validateContent("translations.en", e.Translations.En, false)...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidEntry, e.ID, errors.Join(errs...))
}

func validateContent(path string, c *TranslationContent, korean bool) []error {
	if c == nil {
		return []error{fmt.Errorf("%s: missing", path)}
	}
	var errs []error
	if c.Word == "" {
		errs = append(errs, fmt.Errorf("%s.word: empty", path))
	}
	if c.Explanation == "" {
		errs = append(errs, fmt.Errorf("%s.explanation: empty", path))
	}
	if c.Examples.Beginner == "" || c.Examples.Intermediate == "" || c.Examples.Advanced == "" {
		errs = append(errs, fmt.Errorf("%s.examples: beginner, intermediate and advanced are required", path))
	}
	if d := c.Dialogue; d != nil {
		if d.Context == "" {
			errs = append(errs, fmt.Errorf("%s.dialogue.context: empty", path))
		}
		if n := len(d.Dialogue); n < 2 || n > 6 {
			errs = append(errs, fmt.Errorf("%s.dialogue: %d lines not in 2..6", path, n))
		}
		for i, line := range d.Dialogue {
			if line.Speaker != "A" && line.Speaker != "B" {
				errs = append(errs, fmt.Errorf("%s.dialogue[%d].speaker: %q", path, i, line.Speaker))
			}
			if line.Text == "" || line.Translation == "" {
				errs = append(errs, fmt.Errorf("%s.dialogue[%d]: text and translation are required", path, i))
			}
			if korean && line.Romanization == "" {
				errs = append(errs, fmt.Errorf("%s.dialogue[%d].romanization: empty", path, i))
			}
		}
	}
	return errs
}
