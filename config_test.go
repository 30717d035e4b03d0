package glyphgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	r := cfg.Render
	if r.Width != 200 || r.Height != 200 || r.FontSize != 120 || r.Samples != 1 {
		t.Errorf("unexpected defaults: %+v", r)
	}
	if r.Background != White || r.Foreground != Black {
		t.Errorf("unexpected default colors: %v on %v", r.Foreground, r.Background)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
}

func TestRenderConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RenderConfig)
	}{
		{"zero width", func(c *RenderConfig) { c.Width = 0 }},
		{"negative height", func(c *RenderConfig) { c.Height = -1 }},
		{"zero font size", func(c *RenderConfig) { c.FontSize = 0 }},
		{"zero dpi", func(c *RenderConfig) { c.DPI = 0 }},
		{"zero samples", func(c *RenderConfig) { c.Samples = 0 }},
		{"negative output size", func(c *RenderConfig) { c.OutputSize = -28 }},
		{"bad hinting", func(c *RenderConfig) { c.Hinting = "slight" }},
		{"negative collection index", func(c *RenderConfig) { c.CollectionIndex = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRenderConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"no extensions", func(c *Config) { c.Extensions = nil }, ErrNoExtensions},
		{"no output dir", func(c *Config) { c.OutputDir = "" }, ErrInvalidConfig},
		{"letters", func(c *Config) { c.Characters = "abc" }, ErrInvalidCharacter},
		{"bad render", func(c *Config) { c.Render.Samples = -1 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
roots:
  - /opt/fonts
  - ~/fonts
extensions: [".ttf"]
characters: "05"
output_dir: /tmp/out
render:
  width: 64
  height: 48
  background: "#000"
  foreground: "#ffffff"
  samples: 3
  output_size: 28
  hinting: none
  collection_index: 2
`)

	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	want := DefaultConfig()
	want.Roots = []string{"/opt/fonts", "~/fonts"}
	want.Extensions = []string{".ttf"}
	want.Characters = "05"
	want.OutputDir = "/tmp/out"
	want.Render.Width = 64
	want.Render.Height = 48
	want.Render.Background = Black
	want.Render.Foreground = White
	want.Render.Samples = 3
	want.Render.OutputSize = 28
	want.Render.Hinting = "none"
	want.Render.CollectionIndex = 2

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil) failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "colour: red\n"},
		{"unknown render key", "render:\n  fontsize: 12\n"},
		{"bad color", "render:\n  background: blue\n"},
		{"bad characters", "characters: xyz\n"},
		{"invalid samples", "render:\n  samples: 0\n"},
		{"not yaml", "roots: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseConfig(%q) error = %v, want ErrInvalidConfig", tt.data, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glyphgen.yaml")
	if err := os.WriteFile(path, []byte("render:\n  samples: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Render.Samples != 2 {
		t.Errorf("Samples = %d, want 2", cfg.Render.Samples)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) error = %v, want os.ErrNotExist", err)
	}
}
