package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	index      int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
		index:      0,
	}
}

// withParser selects a registered parser backend by name. Unknown names
// fall back to "ximage".
func withParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithCollectionIndex selects the face to load from a font collection (.ttc).
// The default is the first face. Single fonts only have face 0; any other
// index makes loading them fail with *CollectionIndexError.
func WithCollectionIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.index = i
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	dpi     float64
	hinting Hinting
}

// defaultFaceConfig returns the default face configuration.
// At 72 DPI one point is one pixel.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		dpi:     72,
		hinting: HintingFull,
	}
}

// WithDPI sets the resolution used to convert points to pixels.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		c.dpi = dpi
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
