// Command glyphgen renders the digits 0-9 with every font installed on the
// machine and writes a labeled PNG dataset for digit recognition training.
//
// Usage:
//
//	glyphgen [flags]
//
// Images are written to <out>/<digit>/<n>.png. The command exits with
// status 1 when no font is found.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/glyphgen"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glyphgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML configuration file")
		outDir     = fs.String("out", glyphgen.DefaultOutputDir, "output base directory")
		chars      = fs.String("chars", "0123456789", "digits to render")
		samples    = fs.Int("samples", 1, "images per (digit, font) pair")
		size       = fs.Int("size", 200, "canvas width and height in pixels")
		fontSize   = fs.Float64("font-size", 120, "font size in points")
		outputSize = fs.Int("output-size", 0, "downscale saved images to this square size (0 keeps canvas size)")
		collection = fs.Int("collection-index", 0, "face to load from font collections (.ttc)")
		system     = fs.Bool("system", false, "also search the platform font directories")
		verbose    = fs.Bool("v", false, "enable debug logging")
		roots      stringList
		fonts      stringList
	)
	fs.Var(&roots, "root", "font search root (repeatable; replaces the defaults)")
	fs.Var(&fonts, "font", "extra font file name to look up (repeatable)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	glyphgen.SetLogger(newLogger(stdout, *verbose))
	log := glyphgen.Logger()

	cfg := glyphgen.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = glyphgen.LoadConfig(*configPath); err != nil {
			log.Error("cannot load configuration", "err", err)
			return 1
		}
	}

	// Flags given explicitly override the configuration file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outDir
		case "chars":
			cfg.Characters = *chars
		case "samples":
			cfg.Render.Samples = *samples
		case "size":
			cfg.Render.Width, cfg.Render.Height = *size, *size
		case "font-size":
			cfg.Render.FontSize = *fontSize
		case "output-size":
			cfg.Render.OutputSize = *outputSize
		case "collection-index":
			cfg.Render.CollectionIndex = *collection
		case "system":
			cfg.SystemRoots = *system
		case "root":
			cfg.Roots = roots
		case "font":
			cfg.Fonts = append(cfg.Fonts, fonts...)
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		return 1
	}

	if err := generate(cfg); err != nil {
		log.Error("generation failed", "err", err)
		return 1
	}
	return 0
}

// generate runs discovery and rendering for a validated configuration.
func generate(cfg glyphgen.Config) error {
	log := glyphgen.Logger()

	roots := cfg.Roots
	if cfg.SystemRoots {
		roots = append(roots[:len(roots):len(roots)], glyphgen.SystemSearchRoots()...)
	}

	log.Info("scanning for fonts", "roots", roots)
	found, err := glyphgen.Discover(roots, cfg.Extensions)
	if err != nil {
		return err
	}

	if len(cfg.Fonts) > 0 {
		named, errs := glyphgen.ResolveFonts(cfg.Fonts)
		for _, err := range errs {
			log.Warn("font not found", "err", err)
		}
		found = glyphgen.MergeFonts(found, named)
	}

	log.Info(fmt.Sprintf("found %d font files", len(found)), "count", len(found))
	if len(found) == 0 {
		return fmt.Errorf("%w; check the installed fonts or the search roots", glyphgen.ErrNoFonts)
	}

	chars, err := glyphgen.ParseCharacters(cfg.Characters)
	if err != nil {
		return err
	}
	r, err := glyphgen.NewRenderer(cfg.Render)
	if err != nil {
		return err
	}

	report, err := r.RenderAll(chars, found, cfg.OutputDir)
	if err != nil {
		return err
	}
	log.Info("done", "saved", len(report.Saved), "skipped", len(report.Skipped), "out", cfg.OutputDir)
	return nil
}

// newLogger writes human-readable text to terminals and JSON otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
