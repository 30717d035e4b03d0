package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face represents a font face at a specific size.
// It wraps a rasterizing font.Face and is NOT safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
	face   font.Face
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	m := f.face.Metrics()

	return Metrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		LineGap:   fixedToFloat64(m.Height - m.Ascent - m.Descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	if parsed == nil {
		return false
	}
	return parsed.GlyphIndex(r) != 0
}

// Advance returns the total advance width of s in pixels.
func (f *Face) Advance(s string) float64 {
	return fixedToFloat64(font.MeasureString(f.face, s))
}

// Bounds returns the pixel bounding box of the inked area of s drawn with
// its baseline origin at (0, 0). Y grows downwards, so glyphs sitting on
// the baseline have a negative Min.Y. Fractional edges are rounded outwards.
func (f *Face) Bounds(s string) image.Rectangle {
	if s == "" {
		return image.Rectangle{}
	}
	b, _ := font.BoundString(f.face, s)
	return image.Rect(
		b.Min.X.Floor(),
		b.Min.Y.Floor(),
		b.Max.X.Ceil(),
		b.Max.Y.Ceil(),
	)
}

// Close releases the rasterizer held by the face.
func (f *Face) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
