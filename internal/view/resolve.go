package view

import (
	"github.com/dshills/termview/internal/input/mouse"
	"github.com/dshills/termview/internal/term"
)

// Action is the resolver's verdict on one input event: either a single
// backend command, or nothing. The zero value ignores the event.
type Action struct {
	cmd  term.Command
	call bool
}

// Ignore is the action that does nothing.
var Ignore = Action{}

// BackendCall wraps a command for dispatch.
func BackendCall(cmd term.Command) Action {
	return Action{cmd: cmd, call: true}
}

// Command returns the wrapped command and whether one is present.
func (a Action) Command() (term.Command, bool) {
	return a.cmd, a.call
}

// resolve maps one host event to exactly one action, updating transient
// widget state (modifiers, drag, scroll remainder) as a side effect.
// The backend mode is read fresh for every key transition so a mode
// switch mid-frame affects later events in the same batch.
func (v *TerminalView) resolve(ev Event, st *State) Action {
	switch e := ev.(type) {
	case TextEvent:
		if e.Text == "" {
			return Ignore
		}
		return BackendCall(term.WriteCommand(e.Text))

	case KeyEvent:
		st.Modifiers = e.Event.Modifiers
		if !e.Event.Pressed {
			return Ignore
		}
		act := v.table.Get(e.Event, v.backend.Mode())
		if act.IsNone() {
			return Ignore
		}
		return BackendCall(term.WriteCommand(act.Bytes()))

	case ScrollEvent:
		return v.resolveScroll(e, st)

	case PointerButtonEvent:
		st.IsDragged = e.Pressed
		return Ignore

	case PointerMovedEvent:
		return Ignore

	default:
		return Ignore
	}
}

func (v *TerminalView) resolveScroll(e ScrollEvent, st *State) Action {
	acc := mouse.NewAccumulator(st.ScrollRemainder)
	lines, ok := acc.Lines(e.Wheel, v.face.CellHeight())
	st.ScrollRemainder = acc.Remainder()
	if !ok {
		return Ignore
	}
	return BackendCall(term.ScrollCommand(lines))
}
