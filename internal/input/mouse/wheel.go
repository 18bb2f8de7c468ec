package mouse

import "math"

// WheelUnit is the granularity a host reports wheel deltas in.
type WheelUnit uint8

const (
	// UnitLine means the delta counts whole lines (classic wheel ticks).
	UnitLine WheelUnit = iota

	// UnitPixel means the delta is in pixels (trackpads, precision wheels).
	UnitPixel

	// UnitPage means the delta counts pages. There is no page-scroll
	// backend primitive, so page deltas are ignored.
	UnitPage
)

// String returns the unit name.
func (u WheelUnit) String() string {
	switch u {
	case UnitLine:
		return "line"
	case UnitPixel:
		return "pixel"
	case UnitPage:
		return "page"
	default:
		return "unknown"
	}
}

// WheelEvent is one wheel motion report from the host.
type WheelEvent struct {
	Unit   WheelUnit
	DeltaX float64
	DeltaY float64
}

// Accumulator carries sub-line pixel motion across frames. The zero value
// is ready to use; the widget persists the remainder in its view state
// between frames.
type Accumulator struct {
	remainder float64
}

// NewAccumulator restores an accumulator from a persisted remainder.
func NewAccumulator(remainder float64) Accumulator {
	return Accumulator{remainder: remainder}
}

// Remainder returns the pending sub-line pixel motion, for persisting.
func (a Accumulator) Remainder() float64 {
	return a.remainder
}

// Lines converts a wheel event into a discrete line count. It returns
// ok=false when the event yields no scroll this frame: a zero line delta,
// pixel motion that has not yet reached a full cell, or any page-granular
// event. Positive counts scroll toward earlier history.
func (a *Accumulator) Lines(ev WheelEvent, cellHeight float64) (lines int, ok bool) {
	switch ev.Unit {
	case UnitLine:
		if ev.DeltaY == 0 {
			return 0, false
		}
		l := math.Copysign(math.Ceil(math.Abs(ev.DeltaY)), ev.DeltaY)
		return int(l), true

	case UnitPixel:
		if cellHeight <= 0 {
			return 0, false
		}
		// Negated so upward wheel motion accumulates toward earlier
		// history, matching the backend's scroll convention. Only whole
		// lines are consumed; the fractional part stays in the remainder.
		a.remainder -= ev.DeltaY
		l := math.Trunc(a.remainder / cellHeight)
		a.remainder = math.Mod(a.remainder, cellHeight)
		if l == 0 {
			return 0, false
		}
		return int(l), true

	default:
		return 0, false
	}
}
