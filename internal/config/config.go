package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/termview/internal/input/bindings"
	"github.com/dshills/termview/internal/renderer/font"
	"github.com/dshills/termview/internal/renderer/theme"
	"github.com/dshills/termview/internal/term"
)

// FontConfig selects the font face. An empty path keeps the built-in
// bitmap face.
type FontConfig struct {
	Path string  `toml:"path,omitempty"`
	Size float64 `toml:"size,omitempty"`
}

// ThemeConfig sets the palette. Colors are hex strings ("#rrggbb").
// Empty fields keep the default theme values.
type ThemeConfig struct {
	Foreground string     `toml:"foreground,omitempty"`
	Background string     `toml:"background,omitempty"`
	ANSI       [16]string `toml:"ansi,omitempty"`
	BrightBold *bool      `toml:"bright_bold,omitempty"`
}

// Config is the full widget configuration. The zero value yields the
// built-in defaults for every component.
type Config struct {
	Font     FontConfig      `toml:"font"`
	Theme    ThemeConfig     `toml:"theme"`
	Bindings []bindings.Spec `toml:"bindings"`
}

// Load reads and parses a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML config bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Face builds the configured font face.
func (c *Config) Face() (*font.Face, error) {
	if c.Font.Path == "" {
		return font.Default(), nil
	}
	size := c.Font.Size
	if size <= 0 {
		size = 14
	}
	return font.Load(c.Font.Path, size)
}

// BuildTheme builds the configured theme. Unset colors fall back to the
// defaults.
func (c *Config) BuildTheme() (*theme.Theme, error) {
	def := theme.Default()
	if c.Theme == (ThemeConfig{}) {
		return def, nil
	}

	fg := def.Foreground()
	bg := def.Background()
	var err error

	if c.Theme.Foreground != "" {
		if fg, err = parseColor(c.Theme.Foreground); err != nil {
			return nil, fmt.Errorf("theme foreground: %w", err)
		}
	}
	if c.Theme.Background != "" {
		if bg, err = parseColor(c.Theme.Background); err != nil {
			return nil, fmt.Errorf("theme background: %w", err)
		}
	}

	var ansi [16]theme.RGBA
	for i, base := range term.ANSIColors {
		ansi[i] = theme.RGB(base.R, base.G, base.B)
	}
	for i, hex := range c.Theme.ANSI {
		if hex == "" {
			continue
		}
		if ansi[i], err = parseColor(hex); err != nil {
			return nil, fmt.Errorf("theme ansi[%d]: %w", i, err)
		}
	}

	th := theme.FromPalette(fg, bg, ansi)
	if c.Theme.BrightBold != nil {
		th.SetBrightBold(*c.Theme.BrightBold)
	}
	return th, nil
}

// Table builds the key binding table: the defaults plus the user's
// bindings, which take precedence over defaults for the same chord.
func (c *Config) Table() (*bindings.Table, error) {
	return bindings.FromSpecs(c.Bindings)
}

// parseColor parses a "#rrggbb" hex string.
func parseColor(s string) (theme.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return theme.RGBA{}, err
	}
	r, g, b := col.RGB255()
	return theme.RGB(r, g, b), nil
}
