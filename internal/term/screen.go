package term

import (
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/unilibs/uniwidth"
)

// DefaultScrollback is the scrollback line limit for new screens.
const DefaultScrollback = 10000

// Screen is an in-memory reference backend. It stores a character grid
// with scrollback, a display offset, and selection state, and implements
// the Backend command protocol. It performs no escape-sequence parsing;
// written bytes are forwarded to the configured sink, and optionally
// echoed locally as plain text.
type Screen struct {
	mu sync.Mutex

	id   string
	cols int
	rows int

	lines      []Line
	scrollback []Line
	maxScroll  int

	displayOffset int
	cursorX       int
	cursorY       int

	currentFg    Color
	currentBg    Color
	currentAttrs CellAttributes

	mode      Mode
	selection *SelectionRange

	// onWrite receives bytes from WriteCommand. Nil discards them.
	onWrite func([]byte)

	// localEcho renders printable written bytes into the grid, which is
	// enough for hosts without a process attached.
	localEcho bool
}

// ScreenOptions configures a new Screen.
type ScreenOptions struct {
	// Cols and Rows are the initial grid size (default 80x24).
	Cols int
	Rows int

	// Scrollback is the history line limit (default DefaultScrollback).
	Scrollback int

	// OnWrite is called with bytes from each WriteCommand.
	OnWrite func(data []byte)

	// LocalEcho renders written printable text into the grid.
	LocalEcho bool
}

// NewScreen creates a screen backend with a fresh unique ID.
func NewScreen(opts ScreenOptions) *Screen {
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 24
	}
	if opts.Scrollback <= 0 {
		opts.Scrollback = DefaultScrollback
	}

	s := &Screen{
		id:           uuid.NewString(),
		cols:         opts.Cols,
		rows:         opts.Rows,
		maxScroll:    opts.Scrollback,
		currentFg:    DefaultForeground,
		currentBg:    DefaultBackground,
		currentAttrs: AttrNone,
		onWrite:      opts.OnWrite,
		localEcho:    opts.LocalEcho,
	}
	s.lines = make([]Line, s.rows)
	for i := range s.lines {
		s.lines[i] = NewLine(s.cols)
	}
	return s
}

// ID returns the stable backend identity.
func (s *Screen) ID() string {
	return s.id
}

// Mode returns the current terminal mode flags.
func (s *Screen) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode replaces the terminal mode flags. A real backend flips these
// while processing escape sequences; hosts and tests set them directly.
func (s *Screen) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// ProcessCommand applies a pipeline command. Unknown command types are
// ignored.
func (s *Screen) ProcessCommand(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c := cmd.(type) {
	case WriteCommand:
		s.writeLocked([]byte(c))
	case ResizeCommand:
		cols, rows := gridSize(c.Size, c.Metrics)
		s.resizeLocked(cols, rows)
	case ScrollCommand:
		s.scrollDisplayLocked(int(c))
	}
}

// gridSize converts an available pixel size and cell metrics to grid
// dimensions, never returning less than one cell.
func gridSize(size Size, metrics CellMetrics) (cols, rows int) {
	if metrics.Width <= 0 || metrics.Height <= 0 {
		return 0, 0
	}
	cols = int(math.Floor(size.Width / metrics.Width))
	rows = int(math.Floor(size.Height / metrics.Height))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (s *Screen) writeLocked(data []byte) {
	if s.onWrite != nil {
		s.onWrite(data)
	}
	if !s.localEcho {
		return
	}
	for _, r := range string(data) {
		switch r {
		case '\r':
			s.cursorX = 0
		case '\n':
			s.cursorX = 0
			s.lineFeedLocked()
		case '\b', 0x7f:
			if s.cursorX > 0 {
				s.cursorX--
				s.setCellLocked(s.cursorX, s.cursorY, EmptyCell())
			}
		case '\t':
			s.cursorX = ((s.cursorX / 8) + 1) * 8
			if s.cursorX >= s.cols {
				s.cursorX = s.cols - 1
			}
		default:
			if r < 0x20 {
				continue
			}
			s.echoRuneLocked(r)
		}
	}
}

func (s *Screen) echoRuneLocked(r rune) {
	width := uniwidth.RuneWidth(r)
	if width <= 0 {
		return
	}

	if s.cursorX+width > s.cols {
		s.cursorX = 0
		s.lineFeedLocked()
	}
	if s.cursorY < 0 || s.cursorY >= len(s.lines) {
		return
	}

	s.setCellLocked(s.cursorX, s.cursorY, Cell{
		Rune:       r,
		Width:      width,
		Foreground: s.currentFg,
		Background: s.currentBg,
		Attributes: s.currentAttrs,
	})
	if width == 2 && s.cursorX+1 < s.cols {
		// Continuation cell behind a wide character.
		s.setCellLocked(s.cursorX+1, s.cursorY, Cell{
			Rune:       0,
			Width:      0,
			Foreground: s.currentFg,
			Background: s.currentBg,
			Attributes: s.currentAttrs,
		})
	}
	s.cursorX += width
}

func (s *Screen) setCellLocked(x, y int, cell Cell) {
	if y < 0 || y >= len(s.lines) {
		return
	}
	if x < 0 || x >= len(s.lines[y].Cells) {
		return
	}
	s.lines[y].Cells[x] = cell
}

func (s *Screen) lineFeedLocked() {
	if s.cursorY < s.rows-1 {
		s.cursorY++
		return
	}

	// Top line moves into scrollback.
	s.scrollback = append(s.scrollback, s.lines[0])
	if len(s.scrollback) > s.maxScroll {
		s.scrollback = s.scrollback[len(s.scrollback)-s.maxScroll:]
	}
	copy(s.lines, s.lines[1:])
	s.lines[s.rows-1] = NewLine(s.cols)
}

// resizeLocked resizes the grid, preserving content where possible.
// Identical geometry returns immediately, making the widget's every-frame
// resize request idempotent.
func (s *Screen) resizeLocked(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	if cols == s.cols && rows == s.rows {
		return
	}

	old := s.lines
	lines := make([]Line, rows)
	for y := 0; y < rows; y++ {
		lines[y] = NewLine(cols)
		if y < len(old) {
			copy(lines[y].Cells, old[y].Cells)
			lines[y].Wrapped = old[y].Wrapped && cols >= len(old[y].Cells)
		}
	}

	s.cols = cols
	s.rows = rows
	s.lines = lines
	if s.cursorX >= cols {
		s.cursorX = cols - 1
	}
	if s.cursorY >= rows {
		s.cursorY = rows - 1
	}
	s.displayOffset = s.clampOffsetLocked(s.displayOffset)
}

// scrollDisplayLocked shifts the viewport into history. Positive deltas
// move toward earlier lines.
func (s *Screen) scrollDisplayLocked(delta int) {
	s.displayOffset = s.clampOffsetLocked(s.displayOffset + delta)
}

func (s *Screen) clampOffsetLocked(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(s.scrollback) {
		return len(s.scrollback)
	}
	return offset
}

// SetSelection sets the backend-reported selection in logical grid
// coordinates. Passing nil clears it.
func (s *Screen) SetSelection(sel *SelectionRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sel == nil {
		s.selection = nil
		return
	}
	norm := sel.Normalize()
	s.selection = &norm
}

// DisplayOffset reports how far the viewport is scrolled into history.
func (s *Screen) DisplayOffset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayOffset
}

// Grid reports the current grid dimensions.
func (s *Screen) Grid() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols, s.rows
}

// SetCell places a cell at a viewport position. Hosts without a process
// use this to stage content; tests use it to build fixtures.
func (s *Screen) SetCell(x, y int, cell Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cell.Width == 0 && cell.Rune != 0 {
		cell.Width = uniwidth.RuneWidth(cell.Rune)
	}
	s.setCellLocked(x, y, cell)
}

// Sync derives the renderable snapshot for the current frame.
func (s *Screen) Sync() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset := s.displayOffset
	snap := Snapshot{
		Cols:          s.cols,
		Rows:          s.rows,
		DisplayOffset: offset,
		Cells:         make([]Indexed, 0, s.cols*s.rows),
	}
	if s.selection != nil {
		sel := *s.selection
		snap.Selection = &sel
	}

	for vy := 0; vy < s.rows; vy++ {
		line := s.visibleLineLocked(vy, offset)
		row := vy - offset
		for x := 0; x < s.cols; x++ {
			cell := EmptyCell()
			if x < len(line.Cells) {
				cell = line.Cells[x]
			}
			snap.Cells = append(snap.Cells, Indexed{
				Position: Position{Col: x, Row: row},
				Cell:     cell,
			})
		}
	}
	return snap
}

// visibleLineLocked returns the line shown at viewport row vy when the
// display is shifted offset lines into history.
func (s *Screen) visibleLineLocked(vy, offset int) Line {
	logical := vy - offset
	if logical >= 0 {
		if logical < len(s.lines) {
			return s.lines[logical]
		}
		return NewLine(s.cols)
	}
	idx := len(s.scrollback) + logical
	if idx >= 0 && idx < len(s.scrollback) {
		return s.scrollback[idx]
	}
	return NewLine(s.cols)
}
