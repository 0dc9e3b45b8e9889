package board

import "noteboard/internal/note"

// Collection holds notes newest-first.
type Collection struct {
	notes []note.Note
}

func (c *Collection) Len() int {
	return len(c.notes)
}

// Prepend places n at index 0.
func (c *Collection) Prepend(n note.Note) {
	c.notes = append([]note.Note{n}, c.notes...)
}

// Slice returns a copy of notes[start:end], with bounds clamped to the collection.
func (c *Collection) Slice(start, end int) []note.Note {
	if start < 0 {
		start = 0
	}
	if end > len(c.notes) {
		end = len(c.notes)
	}
	if start >= end {
		return nil
	}
	return append([]note.Note(nil), c.notes[start:end]...)
}

// All returns a copy of every note, newest-first.
func (c *Collection) All() []note.Note {
	return append([]note.Note(nil), c.notes...)
}

func (c *Collection) reset(notes []note.Note) {
	c.notes = append([]note.Note(nil), notes...)
}
