package note

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// MaxChars bounds the text of a note, counted in characters (runes).
	MaxChars = 280
	// LowRemainingThreshold is the point below which the remaining-character
	// indicator switches to its warning style.
	LowRemainingThreshold = 20
)

var (
	ErrEmptyText    = errors.New("note text is empty")
	ErrTextTooLong  = errors.New("note text exceeds 280 characters")
	ErrUnknownColor = errors.New("color is not in the palette")
)

// Note is an immutable record of user text plus an optional image reference.
type Note struct {
	ID       int64
	Text     string
	Color    Color
	ImageURL string
}

// New builds a Note, trimming text and image URL. It fails when the trimmed
// text is empty or longer than MaxChars, or when color is outside the palette.
func New(id int64, text string, color Color, imageURL string) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxChars {
		return Note{}, ErrTextTooLong
	}
	if !color.Valid() {
		return Note{}, ErrUnknownColor
	}
	return Note{
		ID:       id,
		Text:     text,
		Color:    color,
		ImageURL: strings.TrimSpace(imageURL),
	}, nil
}

// HasImage reports whether the note references an image.
func (n Note) HasImage() bool {
	return n.ImageURL != ""
}

// Truncate cuts s to at most MaxChars runes.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxChars {
		return s
	}
	return string([]rune(s)[:MaxChars])
}

// Remaining returns how many characters can still be typed after s.
func Remaining(s string) int {
	left := MaxChars - utf8.RuneCountInString(s)
	if left < 0 {
		return 0
	}
	return left
}

func LowRemaining(s string) bool {
	return Remaining(s) < LowRemainingThreshold
}
