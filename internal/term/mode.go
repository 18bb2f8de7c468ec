package term

import "strings"

// Mode represents terminal mode flags that alter input encoding.
// The resolver reads the backend's mode before every keyboard lookup.
type Mode uint16

const (
	// ModeNone indicates no modes are active.
	ModeNone Mode = 0

	// ModeAppCursor is DECCKM: cursor keys send SS3 sequences.
	ModeAppCursor Mode = 1 << iota

	// ModeAppKeypad is DECKPAM: the numeric keypad sends application codes.
	ModeAppKeypad

	// ModeAltScreen indicates the alternate screen buffer is active.
	ModeAltScreen

	// ModeBracketedPaste wraps pasted text in ESC[200~ / ESC[201~.
	ModeBracketedPaste

	// ModeMouseReport indicates the application requested mouse events.
	ModeMouseReport
)

// Has returns true if m contains the specified mode.
func (m Mode) Has(mode Mode) bool {
	return m&mode != 0
}

// With returns a new Mode with the specified flag added.
func (m Mode) With(mode Mode) Mode {
	return m | mode
}

// Without returns a new Mode with the specified flag removed.
func (m Mode) Without(mode Mode) Mode {
	return m &^ mode
}

// String returns a human-readable representation like "appCursor|altScreen".
func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}

	var parts []string
	if m.Has(ModeAppCursor) {
		parts = append(parts, "appCursor")
	}
	if m.Has(ModeAppKeypad) {
		parts = append(parts, "appKeypad")
	}
	if m.Has(ModeAltScreen) {
		parts = append(parts, "altScreen")
	}
	if m.Has(ModeBracketedPaste) {
		parts = append(parts, "bracketedPaste")
	}
	if m.Has(ModeMouseReport) {
		parts = append(parts, "mouseReport")
	}
	return strings.Join(parts, "|")
}
