// Package text loads font files and draws glyphs for glyphgen.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: a parsed font file (TTF, OTF, or one face of a TTC)
//   - Face: the font at a specific size, holding rasterizer state
//   - FontParser: pluggable parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("DejaVuSans.ttf")
//	if err != nil {
//	    return err
//	}
//	defer source.Close()
//
//	face, err := source.Face(120)
//	if err != nil {
//	    return err
//	}
//	defer face.Close()
//
//	b := face.Bounds("7")
//	text.Draw(img, "7", face, 10-b.Min.X, 10-b.Min.Y, color.Black)
//
// Both FontSource and Face must be closed; closing the source does not
// close faces created from it.
package text
