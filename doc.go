// Package glyphgen builds a labeled digit image dataset from the fonts
// installed on a machine.
//
// # Overview
//
// Generation has two steps. Discover walks a set of search roots and
// returns every font file whose name ends with a known extension. A
// Renderer then draws each digit with each font, centered on a blank
// canvas, and writes the images to
//
//	<base>/<character>/<sequence>.png
//
// Sequence numbers start at 1 for every character and increase across all
// fonts used for it. A font that cannot be loaded is skipped and recorded
// in the Report; any other error stops the run.
//
// # Quick Start
//
//	fonts, err := glyphgen.Discover(glyphgen.DefaultSearchRoots(), glyphgen.DefaultExtensions())
//	if err != nil {
//	    return err
//	}
//	if len(fonts) == 0 {
//	    return glyphgen.ErrNoFonts
//	}
//
//	r, err := glyphgen.NewRenderer(glyphgen.DefaultRenderConfig())
//	if err != nil {
//	    return err
//	}
//	report, err := r.RenderAll(glyphgen.Digits, fonts, "./train/img/char/number")
//
// # Configuration
//
// Config bundles search roots, extensions, characters, output directory
// and RenderConfig. LoadConfig reads it from YAML; absent keys keep their
// defaults:
//
//	roots: [/usr/share/fonts, ~/.fonts]
//	characters: "0123456789"
//	render:
//	  width: 200
//	  height: 200
//	  background: "#ffffff"
//	  foreground: "#000000"
//	  font_size: 120
//	  samples: 1
//	  output_size: 28
//
// # Logging
//
// glyphgen is silent by default. Use SetLogger to receive progress as
// log/slog records.
package glyphgen
