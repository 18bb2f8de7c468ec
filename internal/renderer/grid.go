// Package renderer turns a backend grid snapshot into draw calls: one
// background fill per visible cell and one centered glyph per non-blank
// cell. Output depends only on the snapshot, origin, metrics, and theme,
// so identical frames render identically.
package renderer

import (
	"github.com/dshills/termview/internal/renderer/theme"
	"github.com/dshills/termview/internal/term"
)

// Grid renders snapshots with fixed cell metrics and a theme.
type Grid struct {
	Theme   *theme.Theme
	Metrics term.CellMetrics
}

// NewGrid creates a grid renderer.
func NewGrid(th *theme.Theme, metrics term.CellMetrics) *Grid {
	return &Grid{Theme: th, Metrics: metrics}
}

// Render walks the snapshot cells and emits draw calls to the painter.
//
// Cell placement: origin + (col*cellWidth, (row+displayOffset)*cellHeight).
// The display offset normalizes logical rows (negative in scrollback) to
// viewport rows without moving the backend's coordinates.
//
// Colors swap exactly once when the cell is reverse-video or inside the
// selection, and not at all when it is both: the two conditions share one
// swap so they cancel rather than double-apply.
func (g *Grid) Render(snap term.Snapshot, origin Point, p Painter) {
	w := g.Metrics.Width
	h := g.Metrics.Height

	for _, cell := range snap.Cells {
		x := origin.X + float64(cell.Col)*w
		y := origin.Y + float64(cell.Row+snap.DisplayOffset)*h

		fg := g.Theme.Resolve(cell.Foreground, theme.RoleForeground)
		bg := g.Theme.Resolve(cell.Background, theme.RoleBackground)
		if cell.Attributes.Has(term.AttrBold) {
			fg = g.Theme.Brighten(cell.Foreground, fg)
		}

		inverse := cell.Attributes.Has(term.AttrReverse)
		if inverse != snap.Selected(cell.Position) {
			fg, bg = bg, fg
		}

		rect := RectFromMinSize(Point{X: x, Y: y}, Size{Width: w, Height: h})
		p.FillRect(rect, bg)

		if cell.IsBlank() || cell.Attributes.Has(term.AttrHidden) {
			continue
		}

		// Wide characters occupy this cell plus a continuation cell; the
		// glyph centers across both. The continuation cell paints its own
		// background and is blank.
		glyphRect := rect
		if cell.Width == 2 {
			glyphRect.Size.Width = w * 2
		}
		p.DrawGlyph(glyphRect.Center(), cell.Rune, fg)
	}
}
