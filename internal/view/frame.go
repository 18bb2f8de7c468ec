package view

import (
	"github.com/dshills/termview/internal/renderer"
	"github.com/dshills/termview/internal/term"
)

// Frame is what the host supplies for one widget pass: the allocated
// region, focus and click queries, the queued input events, and a
// painter for the region. Implementations are single-frame values; the
// widget does not retain them.
type Frame interface {
	// Size returns the pixel extent allocated to the widget this frame.
	Size() term.Size

	// Origin returns the top-left pixel of the widget region.
	Origin() renderer.Point

	// Clicked reports whether the widget region was clicked this frame.
	Clicked() bool

	// HasFocus reports whether the widget currently holds keyboard focus.
	HasFocus() bool

	// RequestFocus asks the host to give the widget keyboard focus.
	RequestFocus()

	// Events returns the input events queued for this frame, in arrival
	// order. The widget consumes them only while focused.
	Events() []Event

	// Painter returns the drawing surface for the widget region.
	Painter() renderer.Painter
}
