package renderer

import "github.com/dshills/termview/internal/renderer/theme"

// Painter is the drawing surface the host supplies each frame. The grid
// renderer emits background fills and centered glyphs; everything else
// (fonts, rasterization, batching) is the host's concern.
type Painter interface {
	// FillRect paints a solid rectangle.
	FillRect(r Rect, color theme.RGBA)

	// DrawGlyph draws one character centered on the given point.
	DrawGlyph(center Point, r rune, color theme.RGBA)
}

// Op records one draw call. Hosts that batch, and tests, consume ops via
// the Recorder painter.
type Op struct {
	// Fill is true for a background fill, false for a glyph draw.
	Fill bool

	Rect   Rect  // fill target when Fill
	Center Point // glyph center when !Fill
	Rune   rune  // glyph when !Fill

	Color theme.RGBA
}

// Recorder is a Painter that captures ops in emission order.
type Recorder struct {
	Ops []Op
}

// FillRect records a background fill.
func (rec *Recorder) FillRect(r Rect, color theme.RGBA) {
	rec.Ops = append(rec.Ops, Op{Fill: true, Rect: r, Color: color})
}

// DrawGlyph records a glyph draw.
func (rec *Recorder) DrawGlyph(center Point, r rune, color theme.RGBA) {
	rec.Ops = append(rec.Ops, Op{Center: center, Rune: r, Color: color})
}

// Reset clears recorded ops for reuse across frames.
func (rec *Recorder) Reset() {
	rec.Ops = rec.Ops[:0]
}
