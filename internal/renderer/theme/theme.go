// Package theme resolves the backend's logical color identifiers into
// concrete display colors. The mapping is closed: default foreground and
// background, the 16 named ANSI entries, the computed 256-color cube and
// grayscale ramp, and RGB passthrough. Every lookup succeeds; unknown
// indices fall back to the role default.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/termview/internal/term"
)

// RGBA is a resolved display color with 8-bit channels.
type RGBA struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 0xff}
}

// String returns the hex form, e.g. "#1E1E2EFF".
func (c RGBA) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Role selects which default a Color{Default: true} resolves to.
type Role uint8

const (
	// RoleForeground resolves defaults to the theme foreground.
	RoleForeground Role = iota

	// RoleBackground resolves defaults to the theme background.
	RoleBackground
)

// Theme is a closed palette. The zero value is unusable; construct with
// Default or FromPalette.
type Theme struct {
	foreground RGBA
	background RGBA
	ansi       [16]RGBA

	// brightBold renders bold text in the bright palette variant, the
	// common terminal convention.
	brightBold bool
}

// Default returns the stock dark theme, matching the backend's built-in
// ANSI values.
func Default() *Theme {
	t := &Theme{
		foreground: RGB(229, 229, 229),
		background: RGB(24, 24, 24),
		brightBold: true,
	}
	for i, c := range term.ANSIColors {
		t.ansi[i] = RGB(c.R, c.G, c.B)
	}
	return t
}

// FromPalette builds a theme from explicit colors. Bright entries (8-15)
// that equal the zero value are derived from their base entries with a
// lightness boost.
func FromPalette(fg, bg RGBA, ansi [16]RGBA) *Theme {
	t := &Theme{foreground: fg, background: bg, ansi: ansi, brightBold: true}
	for i := 8; i < 16; i++ {
		if t.ansi[i] == (RGBA{}) {
			t.ansi[i] = lighten(t.ansi[i-8], 0.25)
		}
	}
	return t
}

// SetBrightBold controls whether bold text maps to bright palette entries.
func (t *Theme) SetBrightBold(on bool) {
	t.brightBold = on
}

// Foreground returns the default foreground.
func (t *Theme) Foreground() RGBA {
	return t.foreground
}

// Background returns the default background.
func (t *Theme) Background() RGBA {
	return t.background
}

// Resolve maps a logical cell color to a display color.
func (t *Theme) Resolve(c term.Color, role Role) RGBA {
	switch {
	case c.Default:
		if role == RoleBackground {
			return t.background
		}
		return t.foreground

	case c.Index >= 0 && c.Index < 16:
		return t.ansi[c.Index]

	case c.Index >= 16 && c.Index <= 255:
		// Cube and grayscale entries are computed, not themed.
		cc := term.ColorFromIndex(c.Index)
		return RGB(cc.R, cc.G, cc.B)

	default:
		return RGB(c.R, c.G, c.B)
	}
}

// Brighten returns the bold-weight variant of an already resolved color:
// the bright palette entry for base ANSI colors, otherwise a lightness
// boost.
func (t *Theme) Brighten(c term.Color, resolved RGBA) RGBA {
	if !t.brightBold {
		return resolved
	}
	if !c.Default && c.Index >= 0 && c.Index < 8 {
		return t.ansi[c.Index+8]
	}
	return lighten(resolved, 0.15)
}

// lighten raises perceptual lightness by the given fraction.
func lighten(c RGBA, amount float64) RGBA {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := col.Hsl()
	l += amount
	if l > 1 {
		l = 1
	}
	out := colorful.Hsl(h, s, l).Clamped()
	return RGBA{
		R: uint8(out.R*255 + 0.5),
		G: uint8(out.G*255 + 0.5),
		B: uint8(out.B*255 + 0.5),
		A: c.A,
	}
}
