package view

import (
	"github.com/dshills/termview/internal/input/key"
	"github.com/dshills/termview/internal/input/mouse"
	"github.com/dshills/termview/internal/renderer"
)

// Event is one host input event delivered to the widget. Hosts translate
// their native event types into these before handing them to Show.
type Event interface {
	isEvent()
}

// TextEvent carries already-composed text (IME output, paste, plain
// typing on hosts that deliver text separately from key transitions).
// Text bypasses the binding table entirely.
type TextEvent struct {
	Text string
}

// KeyEvent is a key press or release transition.
type KeyEvent struct {
	Event key.Event
}

// ScrollEvent is a mouse wheel or trackpad motion report.
type ScrollEvent struct {
	Wheel mouse.WheelEvent
}

// PointerButtonEvent is a pointer button transition at a position in
// host pixel coordinates.
type PointerButtonEvent struct {
	Position renderer.Point
	Pressed  bool
}

// PointerMovedEvent reports pointer motion at a position in host pixel
// coordinates.
type PointerMovedEvent struct {
	Position renderer.Point
}

func (TextEvent) isEvent()          {}
func (KeyEvent) isEvent()           {}
func (ScrollEvent) isEvent()        {}
func (PointerButtonEvent) isEvent() {}
func (PointerMovedEvent) isEvent()  {}
