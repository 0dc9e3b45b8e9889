package note

import (
	"fmt"
	"strings"
)

// Color is a palette token. The zero value is Blue, the first palette entry.
type Color int

const (
	Blue Color = iota
	Green
	Purple
	Pink
	Yellow
	Orange
)

var palette = []Color{Blue, Green, Purple, Pink, Yellow, Orange}

var colorNames = map[Color]string{
	Blue:   "blue",
	Green:  "green",
	Purple: "purple",
	Pink:   "pink",
	Yellow: "yellow",
	Orange: "orange",
}

// Palette returns the ordered palette. The slice is a copy.
func Palette() []Color {
	return append([]Color(nil), palette...)
}

// PaletteColor returns the palette entry for insertion index k, cycling.
func PaletteColor(k int) Color {
	n := len(palette)
	return palette[((k%n)+n)%n]
}

func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ParseColor accepts a palette name ("green") or a utility class string
// such as "bg-green-100 dark:bg-green-900", matching on the first bg- class.
func ParseColor(token string) (Color, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, field := range strings.Fields(token) {
		if strings.Contains(field, ":") {
			continue
		}
		if rest, ok := strings.CutPrefix(field, "bg-"); ok {
			name, _, _ := strings.Cut(rest, "-")
			token = name
			break
		}
	}
	for c, name := range colorNames {
		if name == token {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, token)
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
