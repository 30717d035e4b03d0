package glyphgen

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/glyphgen/text"
)

// OutputImage describes one saved image.
type OutputImage struct {
	Character Character
	Font      string
	// Sequence is the 1-based image number within the character's directory.
	Sequence int
	Path     string
}

// Report collects the outcome of a RenderAll call.
type Report struct {
	Saved   []OutputImage
	Skipped []FontFailure
}

// Count returns the number of images saved for ch.
func (r *Report) Count(ch Character) int {
	n := 0
	for _, img := range r.Saved {
		if img.Character == ch {
			n++
		}
	}
	return n
}

// Renderer draws centered glyph images with a fixed RenderConfig.
type Renderer struct {
	cfg     RenderConfig
	hinting text.Hinting
}

// NewRenderer validates cfg and returns a Renderer using it.
func NewRenderer(cfg RenderConfig) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg, hinting: cfg.hinting()}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() RenderConfig {
	return r.cfg
}

// RenderAll renders every character with every font and writes the images
// to <baseDir>/<character>/<sequence>.png, overwriting existing files.
// Fonts are used in the order given.
//
// A font that fails to load is recorded in Report.Skipped and the run
// continues. Any other failure stops the run; the partial report is
// returned together with the error.
func (r *Renderer) RenderAll(chars []Character, fonts []string, baseDir string) (*Report, error) {
	report := &Report{}
	log := Logger()

	for _, ch := range chars {
		dir := filepath.Join(baseDir, ch.String())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return report, fmt.Errorf("glyphgen: create %s: %w", dir, err)
		}

		seq := 0
		for _, font := range fonts {
			if err := r.renderFont(report, ch, font, dir, &seq); err != nil {
				return report, err
			}
		}
		log.Info("character done", "char", ch.String(), "name", ch.Name(), "images", seq)
	}

	log.Info("all glyph images generated", "saved", len(report.Saved), "skipped", len(report.Skipped))
	return report, nil
}

// renderFont writes Samples images of ch using font. A load failure is
// recorded in report and is not returned. The face and its source are
// released before returning on every path.
func (r *Renderer) renderFont(report *Report, ch Character, font, dir string, seq *int) error {
	face, release, err := r.loadFace(font)
	if err != nil {
		f := FontFailure{Character: ch, Font: font, Err: fmt.Errorf("%w: %w", ErrFontLoad, err)}
		report.Skipped = append(report.Skipped, f)
		Logger().Warn("skipping unusable font", "font", font, "char", ch.String(), "err", err)
		return nil
	}
	defer release()

	if !face.HasGlyph(rune(ch)) {
		Logger().Debug("font has no glyph, drawing fallback", "font", font, "char", ch.String())
	}

	for i, n := 0, r.cfg.Samples; i < n; i++ {
		*seq++
		canvas, err := r.RenderGlyph(face, ch)
		if err != nil {
			return fmt.Errorf("glyphgen: render %q with %s: %w", ch.String(), font, err)
		}
		if r.cfg.OutputSize > 0 {
			canvas = canvas.Scaled(r.cfg.OutputSize, r.cfg.OutputSize)
		}

		path := filepath.Join(dir, strconv.Itoa(*seq)+".png")
		if err := canvas.SavePNG(path); err != nil {
			return fmt.Errorf("glyphgen: save %s: %w", path, err)
		}

		report.Saved = append(report.Saved, OutputImage{
			Character: ch,
			Font:      font,
			Sequence:  *seq,
			Path:      path,
		})
		Logger().Info("saved", "path", path, "font", font)
	}
	return nil
}

// loadFace opens font at the configured size. release closes the face and
// then the source; it is nil when err is not.
func (r *Renderer) loadFace(font string) (face *text.Face, release func(), err error) {
	src, err := text.NewFontSourceFromFile(font, text.WithCollectionIndex(r.cfg.CollectionIndex))
	if err != nil {
		return nil, nil, err
	}

	face, err = src.Face(r.cfg.FontSize, text.WithDPI(r.cfg.DPI), text.WithHinting(r.hinting))
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}

	return face, func() {
		_ = face.Close()
		_ = src.Close()
	}, nil
}

// RenderGlyph draws ch with face centered on a new canvas.
// The same face, character and config always produce identical pixels.
func (r *Renderer) RenderGlyph(face *text.Face, ch Character) (*Canvas, error) {
	if face == nil {
		return nil, errors.New("glyphgen: nil face")
	}

	canvas := NewCanvas(r.cfg.Width, r.cfg.Height, r.cfg.Background)

	s := ch.String()
	bounds := face.Bounds(s)
	at := Center(r.cfg.Width, r.cfg.Height, bounds)

	// Shift the baseline origin so the bounding box's corner lands on at.
	origin := at.Sub(bounds.Min)
	text.Draw(canvas.Image(), s, face, origin.X, origin.Y, r.cfg.Foreground)

	return canvas, nil
}

// Center returns the top-left position that centers a box the size of
// bounds on a width x height canvas, using floor division of the free space.
func Center(width, height int, bounds image.Rectangle) image.Point {
	return image.Pt(floorDiv(width-bounds.Dx(), 2), floorDiv(height-bounds.Dy(), 2))
}

// floorDiv divides rounding towards negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
