package glyphgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyphgen.
var (
	// ErrNoFonts is reported when discovery finds no font files at all.
	ErrNoFonts = errors.New("glyphgen: no font files found")

	// ErrNoExtensions is returned by Discover when the extension set is empty.
	ErrNoExtensions = errors.New("glyphgen: font extension set is empty")

	// ErrInvalidConfig is returned when a RenderConfig or Config is unusable.
	ErrInvalidConfig = errors.New("glyphgen: invalid configuration")

	// ErrInvalidCharacter is returned for characters outside the digit alphabet.
	ErrInvalidCharacter = errors.New("glyphgen: character is not a digit")

	// ErrFontLoad wraps every reason a font could not be loaded for rendering.
	ErrFontLoad = errors.New("glyphgen: font failed to load")
)

// FontFailure records one font skipped for one character.
// It is the recoverable outcome of a font load; rendering continues with
// the next font.
type FontFailure struct {
	Character Character
	Font      string
	Err       error
}

func (f *FontFailure) Error() string {
	return fmt.Sprintf("glyphgen: skip font %s for %q: %v", f.Font, f.Character.String(), f.Err)
}

// Unwrap returns the load error. It always wraps ErrFontLoad.
func (f *FontFailure) Unwrap() error {
	return f.Err
}
