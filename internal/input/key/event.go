package key

import (
	"fmt"
	"strings"
)

// Event represents one key transition reported by the host.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Pressed is true on the press transition, false on release.
	// The resolver acts only on presses; releases are always ignored.
	Pressed bool
}

// NewPress creates a press event for a special key.
func NewPress(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods, Pressed: true}
}

// NewRunePress creates a press event for a character key.
func NewRunePress(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods, Pressed: true}
}

// Release returns the release transition for the same key.
func (e Event) Release() Event {
	e.Pressed = false
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Chord returns the key identity without the transition, for matching
// against bindings.
func (e Event) Chord() (Key, rune, Modifier) {
	return e.Key, e.Rune, e.Modifiers
}

// String returns a canonical representation like "Ctrl+c" or "Shift+PgUp".
func (e Event) String() string {
	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "Alt")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "Meta")
	}
	// Shift is part of the character for rune keys.
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "Shift")
	}

	if e.Key == KeyRune {
		parts = append(parts, string(e.Rune))
	} else {
		parts = append(parts, e.Key.String())
	}

	s := strings.Join(parts, "+")
	if !e.Pressed {
		return s + " (release)"
	}
	return s
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Pressed: %v}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Pressed)
}
