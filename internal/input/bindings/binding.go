package bindings

import (
	"math/bits"
	"unicode"

	"github.com/dshills/termview/internal/input/key"
	"github.com/dshills/termview/internal/term"
)

// Binding maps a key chord to an action under optional mode constraints.
type Binding struct {
	// Key is the bound key. For character chords use key.KeyRune and Rune.
	Key key.Key

	// Rune is the bound character for key.KeyRune bindings. Letters are
	// stored lowercase; lookup folds case when Ctrl or Alt is held.
	Rune rune

	// Mods are the required modifiers. For character bindings Shift is
	// ignored during matching, since it is already baked into the rune.
	Mods key.Modifier

	// ModeInclude flags must all be active for the binding to match.
	ModeInclude term.Mode

	// ModeExclude flags must all be inactive for the binding to match.
	ModeExclude term.Mode

	// Action is produced when the binding matches.
	Action Action
}

// Matches reports whether the binding applies to the chord under the
// given terminal mode.
func (b Binding) Matches(ev key.Event, mode term.Mode) bool {
	if b.ModeInclude != term.ModeNone && mode&b.ModeInclude != b.ModeInclude {
		return false
	}
	if mode&b.ModeExclude != term.ModeNone {
		return false
	}

	evMods := ev.Modifiers
	bMods := b.Mods
	if ev.Key == key.KeyRune {
		// Shift produces the rune itself.
		evMods = evMods.Without(key.ModShift)
		bMods = bMods.Without(key.ModShift)
	}
	if evMods != bMods {
		return false
	}

	if b.Key != ev.Key {
		return false
	}
	if b.Key == key.KeyRune {
		r := ev.Rune
		// Ctrl+C and Ctrl+c are the same chord.
		if evMods.HasCtrl() || evMods.HasAlt() {
			r = unicode.ToLower(r)
		}
		return r == b.Rune
	}
	return true
}

// Specificity scores how narrowly the binding is constrained. More mode
// flags and more modifier bits make a binding more specific; ties between
// equally specific bindings are broken by registration order.
func (b Binding) Specificity() int {
	score := 0
	score += 2 * bits.OnesCount16(uint16(b.ModeInclude|b.ModeExclude))
	score += bits.OnesCount8(uint8(b.Mods))
	return score
}
