package glyphgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glyphgen/text"
)

// DefaultOutputDir is where images are written unless configured otherwise.
const DefaultOutputDir = "./train/img/char/number"

// RenderConfig holds the immutable parameters of one rendering run.
type RenderConfig struct {
	// Width and Height are the canvas size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Background Color `yaml:"background"`
	Foreground Color `yaml:"foreground"`

	// FontSize is in points; at the default 72 DPI one point is one pixel.
	FontSize float64 `yaml:"font_size"`
	DPI      float64 `yaml:"dpi"`

	// Samples is the number of images written per (character, font) pair.
	Samples int `yaml:"samples"`

	// OutputSize, when positive, downscales each canvas to an
	// OutputSize x OutputSize image before it is saved.
	OutputSize int `yaml:"output_size"`

	// Hinting is "none", "vertical" or "full".
	Hinting string `yaml:"hinting"`

	// CollectionIndex is the face loaded from each font file. Collections
	// (.ttc) hold several faces; single fonts only have face 0 and are
	// skipped for any other index.
	CollectionIndex int `yaml:"collection_index"`
}

// DefaultRenderConfig returns a 200x200 white canvas with a black 120pt
// glyph, one sample per font.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      200,
		Height:     200,
		Background: White,
		Foreground: Black,
		FontSize:   120,
		DPI:        72,
		Samples:    1,
		OutputSize: 0,
		Hinting:    "full",
	}
}

// Validate reports the first unusable field, wrapped in ErrInvalidConfig.
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font size %v", ErrInvalidConfig, c.FontSize)
	case c.DPI <= 0:
		return fmt.Errorf("%w: dpi %v", ErrInvalidConfig, c.DPI)
	case c.Samples <= 0:
		return fmt.Errorf("%w: samples %d", ErrInvalidConfig, c.Samples)
	case c.OutputSize < 0:
		return fmt.Errorf("%w: output size %d", ErrInvalidConfig, c.OutputSize)
	case c.CollectionIndex < 0:
		return fmt.Errorf("%w: collection index %d", ErrInvalidConfig, c.CollectionIndex)
	}
	if _, err := text.ParseHinting(c.Hinting); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// hinting returns the parsed hinting mode. Call only after Validate.
func (c RenderConfig) hinting() text.Hinting {
	h, _ := text.ParseHinting(c.Hinting)
	return h
}

// Config is the full run configuration: where to look for fonts, what to
// render, and where to write it.
type Config struct {
	// Roots are directory trees searched for fonts. "~" expands to the home directory.
	Roots []string `yaml:"roots"`

	// Extensions are the case-sensitive file suffixes accepted as fonts.
	Extensions []string `yaml:"extensions"`

	// SystemRoots adds the platform font directories to Roots.
	SystemRoots bool `yaml:"system_roots"`

	// Fonts are extra fonts looked up by file name in the platform font directories.
	Fonts []string `yaml:"fonts"`

	// Characters is the subset of digits to render; empty means all ten.
	Characters string `yaml:"characters"`

	OutputDir string `yaml:"output_dir"`

	Render RenderConfig `yaml:"render"`
}

// DefaultConfig returns the configuration of a plain run.
func DefaultConfig() Config {
	return Config{
		Roots:      DefaultSearchRoots(),
		Extensions: DefaultExtensions(),
		OutputDir:  DefaultOutputDir,
		Render:     DefaultRenderConfig(),
	}
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoExtensions)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	if _, err := ParseCharacters(c.Characters); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c.Render.Validate()
}

// LoadConfig reads a YAML configuration file. Keys that are absent keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		return Config{}, fmt.Errorf("glyphgen: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("glyphgen: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
