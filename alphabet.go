package glyphgen

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Character is a single glyph to render. It also names the output
// directory that holds its images.
type Character rune

// Digits is the full alphabet rendered by default, in output order.
var Digits = []Character{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// String returns the character as a string, which is also its directory name.
func (c Character) String() string {
	return string(rune(c))
}

// Name returns the Unicode character name, e.g. "DIGIT SEVEN".
func (c Character) Name() string {
	return runenames.Name(rune(c))
}

// Valid reports whether c is an ASCII digit.
func (c Character) Valid() bool {
	return c >= '0' && c <= '9'
}

// ParseCharacters converts a string such as "0123" into characters,
// preserving order and dropping repeats. An empty string yields Digits.
func ParseCharacters(s string) ([]Character, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return append([]Character(nil), Digits...), nil
	}

	seen := make(map[Character]bool, len(s))
	out := make([]Character, 0, len(s))
	for _, r := range s {
		c := Character(r)
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}
