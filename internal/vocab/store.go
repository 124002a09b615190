package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// EntryFile is a category file loaded for rewriting. Entries decoded from the
// file remember their original JSON, so fields the Entry type does not model
// survive a Save and untouched entries are written back as they were read.
//
// Entries may be modified in place and appended to. The loaded entries must
// keep their positions at the front of the slice.
type EntryFile struct {
	Entries []Entry
	loaded  []loadedEntry
}

type loadedEntry struct {
	raw     json.RawMessage
	decoded []byte
}

// LoadEntryFile reads a category file for rewriting.
func LoadEntryFile(path string) (*EntryFile, error) {
	var raws []json.RawMessage
	if err := readJSON(path, &raws); err != nil {
		return nil, err
	}

	f := &EntryFile{
		Entries: make([]Entry, len(raws)),
		loaded:  make([]loadedEntry, len(raws)),
	}
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &f.Entries[i]); err != nil {
			return nil, fmt.Errorf("decoding %s entry %d: %w", path, i, err)
		}
		decoded, err := marshalEntry(f.Entries[i])
		if err != nil {
			return nil, fmt.Errorf("encoding %s entry %d: %w", path, i, err)
		}
		f.loaded[i] = loadedEntry{raw: raw, decoded: decoded}
	}
	return f, nil
}

// Save writes the file. A loaded entry that did not change is copied
// verbatim; one that did has only its changed fields replaced in the
// original JSON.
func (f *EntryFile) Save(path string) error {
	out := make([]json.RawMessage, len(f.Entries))
	for i, e := range f.Entries {
		b, err := marshalEntry(e)
		if err != nil {
			return fmt.Errorf("encoding %s entry %s: %w", path, e.ID, err)
		}
		if i < len(f.loaded) {
			l := f.loaded[i]
			if bytes.Equal(b, l.decoded) {
				b = l.raw
			} else if b, err = patchJSON(bytes.Clone(l.raw), "", gjson.ParseBytes(l.decoded), gjson.ParseBytes(b)); err != nil {
				return fmt.Errorf("updating %s entry %s: %w", path, e.ID, err)
			}
		}
		out[i] = b
	}
	return writeJSON(path, out)
}

// patchJSON applies to doc the differences between before and after, two
// encodings of the object found at prefix. Keys that only doc has are left
// alone.
func patchJSON(doc []byte, prefix string, before, after gjson.Result) ([]byte, error) {
	join := func(key string) string {
		if prefix == "" {
			return key
		}
		return prefix + "." + key
	}

	var err error
	after.ForEach(func(key, value gjson.Result) bool {
		path := join(key.String())
		old := before.Get(key.String())
		switch {
		case old.Raw == value.Raw:
		case old.IsObject() && value.IsObject() && gjson.GetBytes(doc, path).IsObject():
			doc, err = patchJSON(doc, path, old, value)
		default:
			doc, err = sjson.SetRawBytes(doc, path, []byte(value.Raw))
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	before.ForEach(func(key, _ gjson.Result) bool {
		if after.Get(key.String()).Exists() {
			return true
		}
		doc, err = sjson.DeleteBytes(doc, join(key.String()))
		return err == nil
	})
	return doc, err
}

func marshalEntry(e Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// LoadEntries reads a category file.
func LoadEntries(path string) ([]Entry, error) {
	f, err := LoadEntryFile(path)
	if err != nil {
		return nil, err
	}
	return f.Entries, nil
}

// SaveEntries writes entries with two-space indentation, leaving Hangul and
// other non-ASCII text unescaped.
func SaveEntries(path string, entries []Entry) error {
	return (&EntryFile{Entries: entries}).Save(path)
}

func LoadCategories(path string) ([]Category, error) {
	var categories []Category
	if err := readJSON(path, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func SaveCategories(path string, categories []Category) error {
	if categories == nil {
		categories = []Category{}
	}
	return writeJSON(path, categories)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
