package term

// Color represents a terminal color.
type Color struct {
	R, G, B uint8
	Index   int  // -1 for RGB, 0-255 for indexed
	Default bool // Use default fg/bg
}

// DefaultForeground is the default foreground color.
var DefaultForeground = Color{Default: true}

// DefaultBackground is the default background color.
var DefaultBackground = Color{Default: true}

// Standard ANSI colors (indices 0-15).
var (
	ColorBlack         = Color{Index: 0, R: 0, G: 0, B: 0}
	ColorRed           = Color{Index: 1, R: 205, G: 0, B: 0}
	ColorGreen         = Color{Index: 2, R: 0, G: 205, B: 0}
	ColorYellow        = Color{Index: 3, R: 205, G: 205, B: 0}
	ColorBlue          = Color{Index: 4, R: 0, G: 0, B: 238}
	ColorMagenta       = Color{Index: 5, R: 205, G: 0, B: 205}
	ColorCyan          = Color{Index: 6, R: 0, G: 205, B: 205}
	ColorWhite         = Color{Index: 7, R: 229, G: 229, B: 229}
	ColorBrightBlack   = Color{Index: 8, R: 127, G: 127, B: 127}
	ColorBrightRed     = Color{Index: 9, R: 255, G: 0, B: 0}
	ColorBrightGreen   = Color{Index: 10, R: 0, G: 255, B: 0}
	ColorBrightYellow  = Color{Index: 11, R: 255, G: 255, B: 0}
	ColorBrightBlue    = Color{Index: 12, R: 92, G: 92, B: 255}
	ColorBrightMagenta = Color{Index: 13, R: 255, G: 0, B: 255}
	ColorBrightCyan    = Color{Index: 14, R: 0, G: 255, B: 255}
	ColorBrightWhite   = Color{Index: 15, R: 255, G: 255, B: 255}
)

// ANSIColors is the standard 16-color palette.
var ANSIColors = []Color{
	ColorBlack, ColorRed, ColorGreen, ColorYellow,
	ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
	ColorBrightBlack, ColorBrightRed, ColorBrightGreen, ColorBrightYellow,
	ColorBrightBlue, ColorBrightMagenta, ColorBrightCyan, ColorBrightWhite,
}

// ColorFromIndex returns a color from a 256-color index.
func ColorFromIndex(index int) Color {
	if index < 0 || index > 255 {
		return DefaultForeground
	}

	if index < 16 {
		return ANSIColors[index]
	}

	// 216-color cube (indices 16-231)
	if index < 232 {
		i := index - 16
		r := uint8((i / 36) * 51)
		g := uint8(((i / 6) % 6) * 51)
		b := uint8((i % 6) * 51)
		return Color{R: r, G: g, B: b, Index: index}
	}

	// Grayscale (indices 232-255)
	gray := uint8((index-232)*10 + 8)
	return Color{R: gray, G: gray, B: gray, Index: index}
}

// ColorFromRGB creates an RGB color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Index: -1}
}

// Equals returns true if two colors resolve to the same value.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Index >= 0 || other.Index >= 0 {
		return c.Index == other.Index
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// CellAttributes represents text attributes for a cell.
type CellAttributes uint16

const (
	AttrNone      CellAttributes = 0
	AttrBold      CellAttributes = 1 << 0
	AttrDim       CellAttributes = 1 << 1
	AttrItalic    CellAttributes = 1 << 2
	AttrUnderline CellAttributes = 1 << 3
	AttrBlink     CellAttributes = 1 << 4
	AttrReverse   CellAttributes = 1 << 5
	AttrHidden    CellAttributes = 1 << 6
	AttrStrike    CellAttributes = 1 << 7
)

// Has returns true if the attribute is set.
func (a CellAttributes) Has(attr CellAttributes) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a CellAttributes) With(attr CellAttributes) CellAttributes {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a CellAttributes) Without(attr CellAttributes) CellAttributes {
	return a &^ attr
}

// Cell represents a single character cell in the terminal grid.
type Cell struct {
	Rune       rune
	Width      int // Display width (1 for normal, 2 for wide chars, 0 for continuations)
	Foreground Color
	Background Color
	Attributes CellAttributes
}

// EmptyCell returns a cell with default values.
func EmptyCell() Cell {
	return Cell{
		Rune:       ' ',
		Width:      1,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
		Attributes: AttrNone,
	}
}

// IsBlank returns true if the cell draws no glyph (space, tab, or a wide
// continuation cell). Blank cells still paint their background.
func (c Cell) IsBlank() bool {
	return c.Rune == ' ' || c.Rune == '\t' || c.Rune == 0 || c.Width == 0
}

// Line represents a single line in the terminal grid.
type Line struct {
	Cells   []Cell
	Wrapped bool // True if this line wraps to the next
}

// NewLine creates a line of empty cells with the given width.
func NewLine(width int) Line {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = EmptyCell()
	}
	return Line{Cells: cells}
}
