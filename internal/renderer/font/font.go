// Package font derives monospace cell metrics from a font face. The rest
// of the pipeline consumes only the measured cell width and height; glyph
// rasterization stays with the host.
package font

import (
	"fmt"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/dshills/termview/internal/term"
)

// Face wraps a monospace font face and caches its cell metrics.
type Face struct {
	face    xfont.Face
	metrics term.CellMetrics
}

// Default returns the built-in bitmap face.
func Default() *Face {
	return FromFace(basicfont.Face7x13)
}

// FromFace wraps an existing face.
func FromFace(f xfont.Face) *Face {
	return &Face{face: f, metrics: measure(f)}
}

// Fixed returns a face with the given cell metrics and no glyph source.
// Cell-grid hosts use Fixed(1, 1) so widget pixel space maps directly
// onto their cells.
func Fixed(width, height float64) *Face {
	return &Face{metrics: term.CellMetrics{Width: width, Height: height}}
}

// Load parses an OpenType font file and creates a face at the given
// point size.
func Load(path string, size float64) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s: %w", path, err)
	}

	return FromFace(face), nil
}

// measure computes the cell box from the face: the advance of a wide
// ASCII glyph for width, the line height for height.
func measure(f xfont.Face) term.CellMetrics {
	m := f.Metrics()

	width := 0
	if adv, ok := f.GlyphAdvance('M'); ok {
		width = adv.Ceil()
	}
	if width == 0 {
		width = 7 // fallback for faces without an 'M' advance
	}

	height := m.Height.Ceil()
	if height == 0 {
		height = 13
	}

	return term.CellMetrics{
		Width:  float64(width),
		Height: float64(height),
	}
}

// Metrics returns the measured cell box.
func (f *Face) Metrics() term.CellMetrics {
	return f.metrics
}

// CellHeight is the pixel height of one line, the unit the scroll
// accumulator converts wheel pixels into.
func (f *Face) CellHeight() float64 {
	return f.metrics.Height
}

// Raw exposes the underlying face for hosts that rasterize glyphs.
func (f *Face) Raw() xfont.Face {
	return f.face
}
