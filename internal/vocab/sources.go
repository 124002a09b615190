package vocab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jusunglee/vocabmigrate/internal/metrics"
	"github.com/samber/lo"
)

// Shape describes how a source dictionary file is laid out.
type Shape int

const (
	// ShapeList is a JSON array of records.
	ShapeList Shape = iota
	// ShapeKeyed is a JSON object whose array values hold records. Non-array
	// values are ignored.
	ShapeKeyed
)

// SourceItem is the union of fields found across source dictionaries.
type SourceItem struct {
	Ko     string  `json:"ko"`
	En     string  `json:"en"`
	Stem   string  `json:"stem"`
	Type   *string `json:"type"`
	Domain string  `json:"domain"`
}

// Source is one input dictionary and the rule that turns its records into
// entries. Build returns false for records that should be skipped.
type Source struct {
	Name  string
	Path  string
	Shape Shape
	Build func(SourceItem) (Entry, bool)
}

// pairSource builds entries from {ko, en} records with fixed category,
// part of speech and id prefix.
func pairSource(name, path string, shape Shape, category, pos, prefix string) Source {
	return Source{
		Name:  name,
		Path:  path,
		Shape: shape,
		Build: func(it SourceItem) (Entry, bool) {
			if it.Ko == "" || it.En == "" {
				return Entry{}, false
			}
			return NewEntry(it.Ko, it.En, category, pos, prefix), true
		},
	}
}

// Sources lists the dictionaries read by the converter, in processing order.
var Sources = []Source{
	{
		Name:  "words-ko-en",
		Path:  "words/ko-to-en.json",
		Shape: ShapeList,
		Build: func(it SourceItem) (Entry, bool) {
			if it.Ko == "" || it.En == "" {
				return Entry{}, false
			}
			category, pos := ClassifyWord(it.Ko)
			return NewEntry(it.Ko, it.En, category, pos, "w"), true
		},
	},
	pairSource("words-en-ko", "words/en-to-ko.json", ShapeList, "basic-words", "noun", "ek"),
	{
		Name:  "stems",
		Path:  "words/stems.json",
		Shape: ShapeList,
		// A stem without a type is a verb.
		Build: func(it SourceItem) (Entry, bool) {
			if it.Stem == "" || it.En == "" {
				return Entry{}, false
			}
			pos := "adjective"
			if it.Type == nil || *it.Type == "verb" {
				pos = "verb"
			}
			return NewEntry(it.Stem, it.En, "verb-stems", pos, "st"), true
		},
	},
	pairSource("colors", "words/colors.json", ShapeKeyed, "colors", "noun", "col"),
	pairSource("idioms", "idioms/idioms.json", ShapeList, "idioms", "phrase", "id"),
	pairSource("compound-words", "expressions/compound-words.json", ShapeList, "compound-words", "noun", "cw"),
	pairSource("phrasal-verbs", "expressions/phrasal-verbs.json", ShapeList, "phrasal-verbs", "verb", "pv"),
	pairSource("cultural", "expressions/cultural.json", ShapeList, "cultural-expressions", "phrase", "cu"),
	pairSource("onomatopoeia", "expressions/onomatopoeia.json", ShapeList, "onomatopoeia", "adverb", "on"),
	{
		Name:  "domains",
		Path:  "domains/all-domains.json",
		Shape: ShapeKeyed,
		Build: func(it SourceItem) (Entry, bool) {
			if it.Ko == "" || it.En == "" {
				return Entry{}, false
			}
			return NewEntry(it.Ko, it.En, ClassifyDomain(it.Domain), "noun", domainPrefix(it.Domain)), true
		},
	},
}

// domainPrefix is "d-" plus the first three characters of the last path
// segment of the domain.
func domainPrefix(domain string) string {
	last := domain[strings.LastIndexByte(domain, '/')+1:]
	if r := []rune(last); len(r) > 3 {
		last = string(r[:3])
	}
	return "d-" + last
}

// LoadSource reads the records of a source file.
func LoadSource(path string, shape Shape) ([]SourceItem, error) {
	switch shape {
	case ShapeList:
		var items []SourceItem
		if err := readJSON(path, &items); err != nil {
			return nil, err
		}
		return items, nil
	case ShapeKeyed:
		var groups map[string]json.RawMessage
		if err := readJSON(path, &groups); err != nil {
			return nil, err
		}
		keys := lo.Keys(groups)
		slices.Sort(keys)
		var items []SourceItem
		for _, k := range keys {
			var group []SourceItem
			if err := json.Unmarshal(groups[k], &group); err != nil {
				continue
			}
			items = append(items, group...)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSource, shape)
	}
}

// SourceResult counts what one source contributed.
type SourceResult struct {
	Name    string
	Entries int
	Missing bool
}

type CategoryResult struct {
	CategoryID string
	Entries    int
}

type ConvertReport struct {
	Sources       []SourceResult
	Categories    []CategoryResult
	NewCategories []string
	Total         int
}

// Converter turns the source dictionaries into per-category entry files.
type Converter struct {
	SourceDir      string
	TargetDir      string
	CategoriesPath string
	Sources        []Source
	Log            *slog.Logger
}

func (c *Converter) Run(ctx context.Context) (ConvertReport, error) {
	log := c.Log
	if log == nil {
		log = slog.Default()
	}
	sources := c.Sources
	if sources == nil {
		sources = Sources
	}

	var report ConvertReport

	categories, err := LoadCategories(c.CategoriesPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return report, fmt.Errorf("loading categories: %w", err)
	}
	categories, report.NewCategories = MergeCategories(categories, NewCategories)
	if err := SaveCategories(c.CategoriesPath, categories); err != nil {
		return report, fmt.Errorf("saving categories: %w", err)
	}
	for _, id := range report.NewCategories {
		log.InfoContext(ctx, "added category", "category", id)
	}

	var all []Entry
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		entries, err := c.convertSource(src)
		if errors.Is(err, fs.ErrNotExist) {
			log.WarnContext(ctx, "source not found, skipping", "source", src.Name, "path", src.Path)
			report.Sources = append(report.Sources, SourceResult{Name: src.Name, Missing: true})
			continue
		}
		if err != nil {
			return report, fmt.Errorf("converting %s: %w", src.Name, err)
		}
		metrics.EntriesConverted.WithLabelValues(src.Name).Add(float64(len(entries)))
		log.InfoContext(ctx, "converted source", "source", src.Name, "entries", len(entries))
		report.Sources = append(report.Sources, SourceResult{Name: src.Name, Entries: len(entries)})
		all = append(all, entries...)
	}

	if err := os.MkdirAll(c.TargetDir, 0o755); err != nil {
		return report, fmt.Errorf("creating target dir: %w", err)
	}

	byCategory := lo.GroupBy(all, func(e Entry) string { return e.CategoryID })
	ids := lo.Keys(byCategory)
	slices.Sort(ids)
	for _, id := range ids {
		n, err := c.writeCategory(id, byCategory[id])
		if err != nil {
			metrics.FilesProcessed.WithLabelValues("convert", "error").Inc()
			return report, err
		}
		metrics.FilesProcessed.WithLabelValues("convert", "written").Inc()
		log.InfoContext(ctx, "wrote category", "file", id+".json", "entries", n)
		report.Categories = append(report.Categories, CategoryResult{CategoryID: id, Entries: n})
		report.Total += n
	}
	return report, nil
}

func (c *Converter) convertSource(src Source) ([]Entry, error) {
	items, err := LoadSource(filepath.Join(c.SourceDir, src.Path), src.Shape)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(items, func(it SourceItem, _ int) (Entry, bool) {
		return src.Build(it)
	}), nil
}

// writeCategory merges entries into the category's file, keeping whatever is
// already there.
func (c *Converter) writeCategory(categoryID string, entries []Entry) (int, error) {
	path := filepath.Join(c.TargetDir, categoryID+".json")

	file, err := LoadEntryFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		file = &EntryFile{}
	case err != nil:
		return 0, fmt.Errorf("loading existing %s: %w", categoryID, err)
	}

	file.Entries = MergeNew(file.Entries, Deduplicate(entries))
	if err := file.Save(path); err != nil {
		return 0, err
	}
	return len(file.Entries), nil
}
