package text

import (
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	parsed ParsedFont

	name   string
	path   string
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF, OTF or TTC).
// On success the source keeps referring to data, which must not be modified
// afterwards.
//
// WithCollectionIndex selects the face of a collection.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data, config.index)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path comes from discovery or the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	s, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, err
	}
	s.path = path
	return s, nil
}

// Face creates a Face at the specified size (in points).
// The returned Face holds rasterizer state and must be closed.
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if s == nil {
		panic("text: FontSource is nil; did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if size <= 0 || config.dpi <= 0 {
		return nil, fmt.Errorf("%w: size %v at %v dpi", ErrInvalidSize, size, config.dpi)
	}

	s.mu.RLock()
	parsed := s.parsed
	s.mu.RUnlock()
	if parsed == nil {
		return nil, ErrSourceClosed
	}

	maker, ok := parsed.(faceMaker)
	if !ok {
		return nil, ErrUnsupportedParser
	}
	ff, err := maker.newFace(size, config.dpi, mapHinting(config.hinting))
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &Face{
		source: s,
		size:   size,
		config: config,
		face:   ff,
	}, nil
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Path returns the file the source was loaded from, or "" for in-memory data.
func (s *FontSource) Path() string {
	s.copyCheck()
	return s.path
}

// Parsed returns the parsed font for advanced operations.
// Returns nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// Faces created from this source must be closed separately.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.parsed = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
