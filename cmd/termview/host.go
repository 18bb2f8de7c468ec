package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termview/internal/input/key"
	"github.com/dshills/termview/internal/input/mouse"
	"github.com/dshills/termview/internal/renderer"
	"github.com/dshills/termview/internal/renderer/theme"
	"github.com/dshills/termview/internal/term"
	"github.com/dshills/termview/internal/view"
)

// host adapts a tcell screen into a view.Frame. Cell metrics are fixed
// at 1x1 so the widget's pixel coordinates are terminal cells.
type host struct {
	screen tcell.Screen

	events  []view.Event
	clicked bool

	buf bufPainter
}

func newHost(screen tcell.Screen) *host {
	w, h := screen.Size()
	return &host{screen: screen, buf: newBufPainter(w, h)}
}

// beginFrame resets per-frame state and resizes the paint buffer.
func (h *host) beginFrame() {
	w, hh := h.screen.Size()
	h.buf.resize(w, hh)
	h.events = h.events[:0]
	h.clicked = false
}

// push translates one tcell event into widget events.
func (h *host) push(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		h.pushKey(e)
	case *tcell.EventMouse:
		h.pushMouse(e)
	}
}

func (h *host) pushKey(e *tcell.EventKey) {
	mods := convertMods(e.Modifiers())

	if e.Key() == tcell.KeyRune {
		// Unmodified text goes through the text path, like IME input.
		if mods&^key.ModShift == key.ModNone {
			h.events = append(h.events, view.TextEvent{Text: string(e.Rune())})
			return
		}
		h.events = append(h.events, view.KeyEvent{Event: key.NewRunePress(e.Rune(), mods)})
		return
	}

	if e.Key() == tcell.KeyBacktab {
		h.events = append(h.events, view.KeyEvent{Event: key.NewPress(key.KeyTab, mods|key.ModShift)})
		return
	}

	// Named keys first: Enter, Tab, and Escape share codes with
	// Ctrl+M/I/[ and must not fall into the control-letter range.
	if k, ok := convertKey(e.Key()); ok {
		h.events = append(h.events, view.KeyEvent{Event: key.NewPress(k, mods)})
		return
	}

	// tcell folds Ctrl+letter into dedicated key codes.
	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + e.Key() - tcell.KeyCtrlA)
		h.events = append(h.events, view.KeyEvent{Event: key.NewRunePress(r, mods|key.ModCtrl)})
	}
}

func (h *host) pushMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	pos := renderer.Point{X: float64(x), Y: float64(y)}

	switch {
	case e.Buttons()&tcell.WheelUp != 0:
		h.events = append(h.events, view.ScrollEvent{
			Wheel: mouse.WheelEvent{Unit: mouse.UnitLine, DeltaY: 1},
		})
	case e.Buttons()&tcell.WheelDown != 0:
		h.events = append(h.events, view.ScrollEvent{
			Wheel: mouse.WheelEvent{Unit: mouse.UnitLine, DeltaY: -1},
		})
	case e.Buttons()&tcell.Button1 != 0:
		h.clicked = true
		h.events = append(h.events, view.PointerButtonEvent{Position: pos, Pressed: true})
	case e.Buttons() == tcell.ButtonNone:
		h.events = append(h.events, view.PointerButtonEvent{Position: pos, Pressed: false})
	default:
		h.events = append(h.events, view.PointerMovedEvent{Position: pos})
	}
}

// Frame interface. The demo shows a single widget filling the screen,
// so focus is unconditional.

func (h *host) Size() term.Size {
	w, hh := h.screen.Size()
	return term.Size{Width: float64(w), Height: float64(hh)}
}

func (h *host) Origin() renderer.Point    { return renderer.Point{} }
func (h *host) Clicked() bool             { return h.clicked }
func (h *host) HasFocus() bool            { return true }
func (h *host) RequestFocus()             {}
func (h *host) Events() []view.Event      { return h.events }
func (h *host) Painter() renderer.Painter { return &h.buf }

// flush pushes the painted buffer to the terminal.
func (h *host) flush() {
	for y := 0; y < h.buf.h; y++ {
		for x := 0; x < h.buf.w; x++ {
			c := h.buf.cells[y*h.buf.w+x]
			style := tcell.StyleDefault.
				Foreground(rgb(c.fg)).
				Background(rgb(c.bg))
			h.screen.SetContent(x, y, c.r, nil, style)
		}
	}
	h.screen.Show()
}

func rgb(c theme.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// bufPainter implements renderer.Painter over a cell buffer. With 1x1
// metrics every fill covers whole cells and every glyph center falls
// inside its cell.
type bufPainter struct {
	w, h  int
	cells []paintCell
}

type paintCell struct {
	r      rune
	fg, bg theme.RGBA
}

func newBufPainter(w, h int) bufPainter {
	return bufPainter{w: w, h: h, cells: make([]paintCell, w*h)}
}

func (b *bufPainter) resize(w, h int) {
	if w != b.w || h != b.h {
		b.w, b.h = w, h
		b.cells = make([]paintCell, w*h)
	}
	for i := range b.cells {
		b.cells[i] = paintCell{r: ' '}
	}
}

func (b *bufPainter) FillRect(r renderer.Rect, color theme.RGBA) {
	x0, y0 := int(r.Min.X), int(r.Min.Y)
	x1 := int(r.Min.X + r.Size.Width)
	y1 := int(r.Min.Y + r.Size.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c := b.at(x, y); c != nil {
				c.r = ' '
				c.bg = color
			}
		}
	}
}

func (b *bufPainter) DrawGlyph(center renderer.Point, r rune, color theme.RGBA) {
	if c := b.at(int(center.X), int(center.Y)); c != nil {
		c.r = r
		c.fg = color
	}
}

func (b *bufPainter) at(x, y int) *paintCell {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return nil
	}
	return &b.cells[y*b.w+x]
}

func convertMods(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= key.ModMeta
	}
	return out
}

var tcellKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

func convertKey(k tcell.Key) (key.Key, bool) {
	out, ok := tcellKeys[k]
	return out, ok
}
