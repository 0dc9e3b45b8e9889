// Package seed reads the static note collection a board starts from.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"noteboard/internal/note"

	"gopkg.in/yaml.v3"
)

//go:embed notes.json
var defaultNotes []byte

var ErrDuplicateID = errors.New("duplicate note id")

type record struct {
	ID       int64      `yaml:"id"`
	Text     string     `yaml:"text"`
	Color    note.Color `yaml:"color"`
	ImageURL string     `yaml:"imageUrl,omitempty"`
}

// Parse decodes a YAML or JSON list of note records. Order is preserved:
// the first record is shown first.
func Parse(r io.Reader) ([]note.Note, error) {
	var records []record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	seen := make(map[int64]bool, len(records))
	notes := make([]note.Note, 0, len(records))
	for i, rec := range records {
		if seen[rec.ID] {
			return nil, fmt.Errorf("record %d: %w %d", i, ErrDuplicateID, rec.ID)
		}
		seen[rec.ID] = true

		n, err := note.New(rec.ID, rec.Text, rec.Color, rec.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Load reads a seed file. An empty path selects the built-in dataset.
func Load(path string) ([]note.Note, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()

	notes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return notes, nil
}

func Default() ([]note.Note, error) {
	return Parse(bytes.NewReader(defaultNotes))
}
