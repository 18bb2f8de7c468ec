package view

import (
	"testing"

	"github.com/dshills/termview/internal/input/key"
	"github.com/dshills/termview/internal/input/mouse"
	"github.com/dshills/termview/internal/renderer"
	"github.com/dshills/termview/internal/term"
)

// fakeBackend records every command it receives. It can optionally flip
// its mode after the first write, to verify the mode is re-read for
// later events in the same frame.
type fakeBackend struct {
	id             string
	mode           term.Mode
	cmds           []term.Command
	modeAfterWrite *term.Mode
}

func (b *fakeBackend) ID() string { return b.id }

func (b *fakeBackend) ProcessCommand(cmd term.Command) {
	b.cmds = append(b.cmds, cmd)
	if _, ok := cmd.(term.WriteCommand); ok && b.modeAfterWrite != nil {
		b.mode = *b.modeAfterWrite
		b.modeAfterWrite = nil
	}
}

func (b *fakeBackend) Mode() term.Mode { return b.mode }

func (b *fakeBackend) Sync() term.Snapshot {
	return term.Snapshot{
		Cells: []term.Indexed{
			{Position: term.Position{Col: 0, Row: 0}, Cell: term.Cell{Rune: 'x', Width: 1}},
			{Position: term.Position{Col: 1, Row: 0}, Cell: term.Cell{Rune: ' ', Width: 1}},
		},
		Cols: 2,
		Rows: 1,
	}
}

func (b *fakeBackend) writes() []string {
	var out []string
	for _, c := range b.cmds {
		if w, ok := c.(term.WriteCommand); ok {
			out = append(out, string(w))
		}
	}
	return out
}

func (b *fakeBackend) scrolls() []int {
	var out []int
	for _, c := range b.cmds {
		if s, ok := c.(term.ScrollCommand); ok {
			out = append(out, int(s))
		}
	}
	return out
}

func (b *fakeBackend) resizes() []term.ResizeCommand {
	var out []term.ResizeCommand
	for _, c := range b.cmds {
		if r, ok := c.(term.ResizeCommand); ok {
			out = append(out, r)
		}
	}
	return out
}

// fakeFrame is a scripted single-frame host.
type fakeFrame struct {
	size           term.Size
	origin         renderer.Point
	clicked        bool
	focused        bool
	focusRequested bool
	events         []Event
	rec            renderer.Recorder
}

func (f *fakeFrame) Size() term.Size           { return f.size }
func (f *fakeFrame) Origin() renderer.Point    { return f.origin }
func (f *fakeFrame) Clicked() bool             { return f.clicked }
func (f *fakeFrame) HasFocus() bool            { return f.focused }
func (f *fakeFrame) RequestFocus()             { f.focusRequested = true }
func (f *fakeFrame) Events() []Event           { return f.events }
func (f *fakeFrame) Painter() renderer.Painter { return &f.rec }

func newFrame(events ...Event) *fakeFrame {
	return &fakeFrame{
		size:    term.Size{Width: 140, Height: 130},
		focused: true,
		events:  events,
	}
}

func TestShowResizesEveryFrame(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)
	st := &State{}

	for i := 0; i < 3; i++ {
		v.Show(newFrame(), st)
	}

	rs := b.resizes()
	if len(rs) != 3 {
		t.Fatalf("got %d resize commands, want one per frame (3)", len(rs))
	}
	for i, r := range rs {
		if r.Size != (term.Size{Width: 140, Height: 130}) {
			t.Errorf("resize %d size = %+v", i, r.Size)
		}
	}
}

func TestShowClickRequestsFocus(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)

	f := newFrame()
	f.clicked = true
	v.Show(f, &State{})

	if !f.focusRequested {
		t.Error("click did not request focus")
	}
}

func TestShowIgnoresInputWithoutFocus(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)
	st := &State{}

	f := newFrame(
		TextEvent{Text: "hello"},
		KeyEvent{Event: key.NewPress(key.KeyEnter, key.ModNone)},
		ScrollEvent{Wheel: mouse.WheelEvent{Unit: mouse.UnitLine, DeltaY: 3}},
	)
	f.focused = false
	v.Show(f, st)

	if got := b.writes(); got != nil {
		t.Errorf("unfocused frame produced writes %q", got)
	}
	if got := b.scrolls(); got != nil {
		t.Errorf("unfocused frame produced scrolls %v", got)
	}
	if len(b.resizes()) != 1 {
		t.Error("resize must still be issued without focus")
	}
	if st.IsFocused {
		t.Error("state focus not cleared")
	}
}

func TestShowRendersWithoutFocus(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)

	f := newFrame()
	f.focused = false
	v.Show(f, &State{})

	if len(f.rec.Ops) == 0 {
		t.Error("unfocused frame painted nothing")
	}
}

func TestKeyReleaseIgnored(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)

	press := key.NewPress(key.KeyEnter, key.ModNone)
	v.Show(newFrame(
		KeyEvent{Event: press},
		KeyEvent{Event: press.Release()},
	), &State{})

	if got := b.writes(); len(got) != 1 || got[0] != "\r" {
		t.Errorf("writes = %q, want single \\r from the press only", got)
	}
}

func TestTextBypassesBindings(t *testing.T) {
	// App-cursor mode changes what arrow keys send, but never what text
	// events send.
	b := &fakeBackend{id: "t1", mode: term.ModeAppCursor}
	v := New(b)

	v.Show(newFrame(
		TextEvent{Text: "ls -la"},
		KeyEvent{Event: key.NewPress(key.KeyUp, key.ModNone)},
	), &State{})

	got := b.writes()
	want := []string{"ls -la", "\x1bOA"}
	if len(got) != len(want) {
		t.Fatalf("writes = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("write %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEmptyTextIgnored(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)

	v.Show(newFrame(TextEvent{}), &State{})

	if got := b.writes(); got != nil {
		t.Errorf("empty text produced writes %q", got)
	}
}

func TestModeReadPerKeyEvent(t *testing.T) {
	// The backend enters app-cursor mode as a result of the first write.
	// The second arrow in the same frame must already see the new mode.
	app := term.ModeAppCursor
	b := &fakeBackend{id: "t1", modeAfterWrite: &app}
	v := New(b)

	up := key.NewPress(key.KeyUp, key.ModNone)
	v.Show(newFrame(KeyEvent{Event: up}, KeyEvent{Event: up}), &State{})

	got := b.writes()
	want := []string{"\x1b[A", "\x1bOA"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("writes = %q, want %q", got, want)
	}
}

func TestEventsResolveInArrivalOrder(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)

	v.Show(newFrame(
		TextEvent{Text: "a"},
		KeyEvent{Event: key.NewPress(key.KeyTab, key.ModNone)},
		TextEvent{Text: "b"},
	), &State{})

	got := b.writes()
	want := []string{"a", "\t", "b"}
	if len(got) != len(want) {
		t.Fatalf("writes = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("write %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnmappedChordProducesNoCommand(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)

	v.Show(newFrame(
		KeyEvent{Event: key.NewPress(key.KeyNone, key.ModMeta)},
	), &State{})

	if got := b.writes(); got != nil {
		t.Errorf("unmapped chord produced writes %q", got)
	}
}

func TestScrollAccumulatesAcrossFrames(t *testing.T) {
	// Default face is 13px tall; four quarter-cell pixel deltas add up
	// to exactly one line, emitted on the fourth frame.
	b := &fakeBackend{id: "t1"}
	v := New(b)
	st := &State{}

	wheel := ScrollEvent{Wheel: mouse.WheelEvent{Unit: mouse.UnitPixel, DeltaY: -3.25}}
	for i := 0; i < 3; i++ {
		v.Show(newFrame(wheel), st)
		if got := b.scrolls(); got != nil {
			t.Fatalf("frame %d scrolled %v before a full line accumulated", i, got)
		}
	}

	v.Show(newFrame(wheel), st)
	if got := b.scrolls(); len(got) != 1 || got[0] != 1 {
		t.Errorf("scrolls = %v, want [1]", got)
	}
	if st.ScrollRemainder != 0 {
		t.Errorf("remainder = %v, want 0 after exact line", st.ScrollRemainder)
	}
}

func TestLineWheelScrollsImmediately(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)

	v.Show(newFrame(
		ScrollEvent{Wheel: mouse.WheelEvent{Unit: mouse.UnitLine, DeltaY: 2.5}},
	), &State{})

	if got := b.scrolls(); len(got) != 1 || got[0] != 3 {
		t.Errorf("scrolls = %v, want [3]", got)
	}
}

func TestPointerButtonTracksDrag(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)
	st := &State{}

	v.Show(newFrame(PointerButtonEvent{Pressed: true}), st)
	if !st.IsDragged {
		t.Error("press did not set drag state")
	}
	if len(b.writes()) != 0 || len(b.scrolls()) != 0 {
		t.Error("pointer events must not produce backend commands")
	}

	v.Show(newFrame(
		PointerMovedEvent{Position: renderer.Point{X: 10, Y: 10}},
		PointerButtonEvent{Pressed: false},
	), st)
	if st.IsDragged {
		t.Error("release did not clear drag state")
	}
}

func TestKeyEventUpdatesModifiers(t *testing.T) {
	b := &fakeBackend{id: "t1"}
	v := New(b)
	st := &State{}

	v.Show(newFrame(
		KeyEvent{Event: key.NewRunePress('c', key.ModCtrl)},
	), st)

	if st.Modifiers != key.ModCtrl {
		t.Errorf("state modifiers = %v, want ctrl", st.Modifiers)
	}
	if got := b.writes(); len(got) != 1 || got[0] != "\x03" {
		t.Errorf("writes = %q, want ETX", got)
	}
}

func TestStateStore(t *testing.T) {
	s := NewStateStore()

	a := s.Load("backend-a")
	if a == nil {
		t.Fatal("Load returned nil")
	}
	a.ScrollRemainder = 4.5

	if again := s.Load("backend-a"); again != a {
		t.Error("Load did not return the same state for the same backend")
	}
	if b := s.Load("backend-b"); b == a {
		t.Error("distinct backends share state")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	s.Drop("backend-a")
	if s.Len() != 1 {
		t.Errorf("Len() after Drop = %d, want 1", s.Len())
	}
	if fresh := s.Load("backend-a"); fresh.ScrollRemainder != 0 {
		t.Error("Drop did not discard the old state")
	}
}

func TestStateKeyFormat(t *testing.T) {
	if got, want := StateKey("abc"), "termview/instance/abc"; got != want {
		t.Errorf("StateKey = %q, want %q", got, want)
	}
}
