package text

import (
	"encoding/binary"
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// makeCollection builds a TTC file containing the given single fonts.
// Table offsets inside each font are rebased, as collection offsets are
// relative to the start of the file.
func makeCollection(t *testing.T, fonts ...[]byte) []byte {
	t.Helper()

	header := 12 + 4*len(fonts)
	out := make([]byte, header)
	copy(out, "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))

	for i, f := range fonts {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		base := len(out)
		binary.BigEndian.PutUint32(out[12+4*i:], uint32(base))

		rebased := make([]byte, len(f))
		copy(rebased, f)
		numTables := int(binary.BigEndian.Uint16(rebased[4:]))
		for j := 0; j < numTables; j++ {
			rec := rebased[12+16*j:]
			off := binary.BigEndian.Uint32(rec[8:])
			binary.BigEndian.PutUint32(rec[8:], off+uint32(base))
		}
		out = append(out, rebased...)
	}
	return out
}

func TestXimageParserSingleFont(t *testing.T) {
	p := &ximageParser{}

	parsed, err := p.Parse(goregular.TTF, 0)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want positive", parsed.UnitsPerEm())
	}
	if parsed.GlyphIndex('0') == 0 {
		t.Error("expected a glyph for '0'")
	}
}

func TestXimageParserSingleFontIndex(t *testing.T) {
	p := &ximageParser{}

	_, err := p.Parse(goregular.TTF, 1)
	var idxErr *CollectionIndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("Parse(index 1) error = %v, want *CollectionIndexError", err)
	}
	if idxErr.NumFonts != 1 {
		t.Errorf("NumFonts = %d, want 1", idxErr.NumFonts)
	}
}

func TestXimageParserCollection(t *testing.T) {
	data := makeCollection(t, goregular.TTF, gobold.TTF)

	tests := []struct {
		name   string
		index  int
		single []byte
	}{
		{"first face", 0, goregular.TTF},
		{"second face", 1, gobold.TTF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := NewFontSource(data, WithCollectionIndex(tt.index))
			if err != nil {
				t.Fatalf("NewFontSource failed: %v", err)
			}
			defer func() {
				_ = source.Close()
			}()

			want, err := (&ximageParser{}).Parse(tt.single, 0)
			if err != nil {
				t.Fatalf("Parse single font failed: %v", err)
			}
			if got := source.Parsed().FullName(); got != want.FullName() {
				t.Errorf("FullName() = %q, want %q", got, want.FullName())
			}
			if got := source.Parsed().NumGlyphs(); got != want.NumGlyphs() {
				t.Errorf("NumGlyphs() = %d, want %d", got, want.NumGlyphs())
			}
		})
	}
}

func TestXimageParserCollectionIndexOutOfRange(t *testing.T) {
	data := makeCollection(t, goregular.TTF)

	_, err := NewFontSource(data, WithCollectionIndex(3))
	var idxErr *CollectionIndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("error = %v, want *CollectionIndexError", err)
	}
	if idxErr.Index != 3 || idxErr.NumFonts != 1 {
		t.Errorf("got %+v, want Index 3 NumFonts 1", idxErr)
	}
}

type metadataOnlyParser struct{}

func (metadataOnlyParser) Parse([]byte, int) (ParsedFont, error) { return metadataOnlyFont{}, nil }

type metadataOnlyFont struct{}

func (metadataOnlyFont) Name() string           { return "Stub" }
func (metadataOnlyFont) FullName() string       { return "Stub Regular" }
func (metadataOnlyFont) NumGlyphs() int         { return 1 }
func (metadataOnlyFont) UnitsPerEm() int        { return 1000 }
func (metadataOnlyFont) GlyphIndex(rune) uint16 { return 0 }

func TestParserWithoutFaces(t *testing.T) {
	registerParser("metadata-only", metadataOnlyParser{})
	t.Cleanup(func() { delete(parserRegistry, "metadata-only") })

	source, err := NewFontSource([]byte{1}, withParser("metadata-only"))
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	if source.Name() != "Stub" {
		t.Errorf("Name() = %q, want Stub", source.Name())
	}

	if _, err := source.Face(12); !errors.Is(err, ErrUnsupportedParser) {
		t.Errorf("Face() error = %v, want ErrUnsupportedParser", err)
	}
}
