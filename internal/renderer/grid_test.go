package renderer

import (
	"testing"

	"github.com/dshills/termview/internal/renderer/theme"
	"github.com/dshills/termview/internal/term"
)

func metrics() term.CellMetrics {
	return term.CellMetrics{Width: 8, Height: 16}
}

func snapshotOf(cells ...term.Indexed) term.Snapshot {
	maxCol, maxRow := 0, 0
	for _, c := range cells {
		if c.Col > maxCol {
			maxCol = c.Col
		}
		if c.Row > maxRow {
			maxRow = c.Row
		}
	}
	return term.Snapshot{Cells: cells, Cols: maxCol + 1, Rows: maxRow + 1}
}

func cellAt(col, row int, r rune, fg, bg term.Color, attrs term.CellAttributes) term.Indexed {
	return term.Indexed{
		Position: term.Position{Col: col, Row: row},
		Cell: term.Cell{
			Rune:       r,
			Width:      1,
			Foreground: fg,
			Background: bg,
			Attributes: attrs,
		},
	}
}

func TestRenderTwoCellGrid(t *testing.T) {
	// 2x1 grid: 'A' red-on-black, then a blank with a blue background.
	// Expect fill(black), glyph('A', red), fill(blue), and no second glyph.
	snap := snapshotOf(
		cellAt(0, 0, 'A', term.ColorRed, term.ColorBlack, term.AttrNone),
		cellAt(1, 0, ' ', term.DefaultForeground, term.ColorBlue, term.AttrNone),
	)

	th := theme.Default()
	var rec Recorder
	NewGrid(th, metrics()).Render(snap, Point{}, &rec)

	if len(rec.Ops) != 3 {
		t.Fatalf("got %d ops, want 3 (two fills, one glyph): %+v", len(rec.Ops), rec.Ops)
	}

	fill0 := rec.Ops[0]
	if !fill0.Fill || fill0.Rect.Min != (Point{X: 0, Y: 0}) {
		t.Errorf("op 0 should fill column 0 at the origin, got %+v", fill0)
	}
	if fill0.Color != th.Resolve(term.ColorBlack, theme.RoleBackground) {
		t.Errorf("column 0 background = %v, want black", fill0.Color)
	}

	glyph := rec.Ops[1]
	if glyph.Fill || glyph.Rune != 'A' {
		t.Fatalf("op 1 should draw 'A', got %+v", glyph)
	}
	if glyph.Color != th.Resolve(term.ColorRed, theme.RoleForeground) {
		t.Errorf("glyph color = %v, want red", glyph.Color)
	}
	if want := (Point{X: 4, Y: 8}); glyph.Center != want {
		t.Errorf("glyph center = %v, want %v (cell midpoint)", glyph.Center, want)
	}

	fill1 := rec.Ops[2]
	if !fill1.Fill || fill1.Rect.Min != (Point{X: 8, Y: 0}) {
		t.Errorf("op 2 should fill column 1, got %+v", fill1)
	}
	if fill1.Color != th.Resolve(term.ColorBlue, theme.RoleBackground) {
		t.Errorf("column 1 background = %v, want blue", fill1.Color)
	}
}

func TestRenderSwapRule(t *testing.T) {
	th := theme.Default()
	red := th.Resolve(term.ColorRed, theme.RoleForeground)
	black := th.Resolve(term.ColorBlack, theme.RoleBackground)

	sel := &term.SelectionRange{
		Start: term.Position{Col: 0, Row: 0},
		End:   term.Position{Col: 0, Row: 0},
	}

	tests := []struct {
		name     string
		attrs    term.CellAttributes
		selected bool
		wantFG   theme.RGBA
		wantBG   theme.RGBA
	}{
		{"neither swaps nothing", term.AttrNone, false, red, black},
		{"inverse swaps once", term.AttrReverse, false, black, red},
		{"selection swaps once", term.AttrNone, true, black, red},
		{"both cancel out", term.AttrReverse, true, red, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshotOf(cellAt(0, 0, 'x', term.ColorRed, term.ColorBlack, tt.attrs))
			if tt.selected {
				snap.Selection = sel
			}

			var rec Recorder
			NewGrid(th, metrics()).Render(snap, Point{}, &rec)

			if len(rec.Ops) != 2 {
				t.Fatalf("got %d ops, want fill+glyph", len(rec.Ops))
			}
			if rec.Ops[0].Color != tt.wantBG {
				t.Errorf("background = %v, want %v", rec.Ops[0].Color, tt.wantBG)
			}
			if rec.Ops[1].Color != tt.wantFG {
				t.Errorf("foreground = %v, want %v", rec.Ops[1].Color, tt.wantFG)
			}
		})
	}
}

func TestRenderDisplayOffsetShiftsRows(t *testing.T) {
	// Scrolled two lines into history: logical row -2 lands on viewport
	// row 0.
	snap := term.Snapshot{
		Cells: []term.Indexed{
			cellAt(0, -2, 'h', term.DefaultForeground, term.DefaultBackground, term.AttrNone),
			cellAt(0, 0, 'c', term.DefaultForeground, term.DefaultBackground, term.AttrNone),
		},
		Cols: 1, Rows: 3, DisplayOffset: 2,
	}

	var rec Recorder
	NewGrid(theme.Default(), metrics()).Render(snap, Point{X: 10, Y: 20}, &rec)

	if got := rec.Ops[0].Rect.Min; got != (Point{X: 10, Y: 20}) {
		t.Errorf("history cell at %v, want viewport top %v", got, Point{X: 10, Y: 20})
	}
	// Logical row 0 shifts down by the offset.
	if got := rec.Ops[2].Rect.Min; got != (Point{X: 10, Y: 20 + 2*16}) {
		t.Errorf("grid-top cell at %v, want %v", got, Point{X: 10, Y: 52})
	}
}

func TestRenderSkipsGlyphsNotFills(t *testing.T) {
	snap := snapshotOf(
		cellAt(0, 0, ' ', term.DefaultForeground, term.DefaultBackground, term.AttrNone),
		cellAt(1, 0, '\t', term.DefaultForeground, term.DefaultBackground, term.AttrNone),
	)

	var rec Recorder
	NewGrid(theme.Default(), metrics()).Render(snap, Point{}, &rec)

	if len(rec.Ops) != 2 {
		t.Fatalf("got %d ops, want 2 fills", len(rec.Ops))
	}
	for i, op := range rec.Ops {
		if !op.Fill {
			t.Errorf("op %d is a glyph draw for a blank cell", i)
		}
	}
}

func TestRenderWideCellCentersAcrossTwoColumns(t *testing.T) {
	wide := cellAt(0, 0, '漢', term.DefaultForeground, term.DefaultBackground, term.AttrNone)
	wide.Cell.Width = 2
	cont := term.Indexed{
		Position: term.Position{Col: 1, Row: 0},
		Cell:     term.Cell{Rune: 0, Width: 0, Foreground: term.DefaultForeground, Background: term.DefaultBackground},
	}
	snap := snapshotOf(wide, cont)

	var rec Recorder
	NewGrid(theme.Default(), metrics()).Render(snap, Point{}, &rec)

	// Two fills (one per cell) and one glyph centered across both columns.
	var glyphs []Op
	fills := 0
	for _, op := range rec.Ops {
		if op.Fill {
			fills++
		} else {
			glyphs = append(glyphs, op)
		}
	}
	if fills != 2 || len(glyphs) != 1 {
		t.Fatalf("got %d fills and %d glyphs, want 2 and 1", fills, len(glyphs))
	}
	if want := (Point{X: 8, Y: 8}); glyphs[0].Center != want {
		t.Errorf("wide glyph center = %v, want %v", glyphs[0].Center, want)
	}
}

func TestRenderDeterminism(t *testing.T) {
	snap := snapshotOf(
		cellAt(0, 0, 'a', term.ColorGreen, term.DefaultBackground, term.AttrNone),
		cellAt(1, 0, 'b', term.ColorFromIndex(123), term.ColorFromRGB(1, 2, 3), term.AttrBold),
	)
	g := NewGrid(theme.Default(), metrics())

	var first, second Recorder
	g.Render(snap, Point{X: 3, Y: 7}, &first)
	g.Render(snap, Point{X: 3, Y: 7}, &second)

	if len(first.Ops) != len(second.Ops) {
		t.Fatalf("op counts differ: %d vs %d", len(first.Ops), len(second.Ops))
	}
	for i := range first.Ops {
		if first.Ops[i] != second.Ops[i] {
			t.Errorf("op %d differs across identical frames: %+v vs %+v",
				i, first.Ops[i], second.Ops[i])
		}
	}
}
