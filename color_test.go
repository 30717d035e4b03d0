package glyphgen

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"000", Black},
		{"#f008", Color{R: 255, A: 136}},
		{"#336699", Color{R: 0x33, G: 0x66, B: 0x99, A: 255}},
		{"FFFFFF", White},
		{"#10203040", Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "white"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidConfig", in, err)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := White.String(); got != "#ffffff" {
		t.Errorf("White.String() = %q", got)
	}
	if got := (Color{R: 1, G: 2, B: 3, A: 4}).String(); got != "#01020304" {
		t.Errorf("String() = %q, want #01020304", got)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Black.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("Black.RGBA() = %d %d %d %d", r, g, b, a)
	}
}

func TestColorYAML(t *testing.T) {
	var v struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte("c: \"#102030\"\n"), &v); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if want := (Color{R: 0x10, G: 0x20, B: 0x30, A: 255}); v.C != want {
		t.Errorf("got %v, want %v", v.C, want)
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal of %q failed: %v", out, err)
	}
	if back.C != v.C {
		t.Errorf("round trip = %v, want %v", back.C, v.C)
	}

	if err := yaml.Unmarshal([]byte("c: nope\n"), &v); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Unmarshal bad color error = %v, want ErrInvalidConfig", err)
	}
}
