package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face is requested at a size or DPI
	// that is not positive.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrUnsupportedParser is returned when a FontSource was parsed by a
	// backend that cannot produce rasterizing faces.
	ErrUnsupportedParser = errors.New("text: parser backend cannot create faces")

	// ErrSourceClosed is returned when a face is requested from a closed FontSource.
	ErrSourceClosed = errors.New("text: font source is closed")
)

// CollectionIndexError is returned when a font collection does not contain
// the requested face index.
type CollectionIndexError struct {
	Index    int
	NumFonts int
}

func (e *CollectionIndexError) Error() string {
	return "text: collection face index out of range"
}
