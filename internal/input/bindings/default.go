package bindings

import (
	"fmt"

	"github.com/dshills/termview/internal/input/key"
	"github.com/dshills/termview/internal/term"
)

// xtermMod computes the xterm modifier parameter: 1 plus Shift=1, Alt=2,
// Ctrl=4, Meta=8.
func xtermMod(mods key.Modifier) int {
	mod := 1
	if mods.HasShift() {
		mod++
	}
	if mods.HasAlt() {
		mod += 2
	}
	if mods.HasCtrl() {
		mod += 4
	}
	if mods.HasMeta() {
		mod += 8
	}
	return mod
}

// modCombos are every non-empty combination of Shift, Alt and Ctrl, used
// to generate the modified variants of cursor and function keys.
var modCombos = func() []key.Modifier {
	var combos []key.Modifier
	all := []key.Modifier{key.ModShift, key.ModAlt, key.ModCtrl}
	for mask := 1; mask < 1<<len(all); mask++ {
		var m key.Modifier
		for i, mod := range all {
			if mask&(1<<i) != 0 {
				m = m.With(mod)
			}
		}
		combos = append(combos, m)
	}
	return combos
}()

// cursorKey emits the three encodings of a cursor-style key: CSI when
// application cursor mode is off, SS3 when it is on, and the parametrized
// CSI form for every modifier combination (mode-independent).
func cursorKey(k key.Key, final byte) []Binding {
	bs := []Binding{
		{Key: k, ModeExclude: term.ModeAppCursor, Action: Esc(fmt.Sprintf("\x1b[%c", final))},
		{Key: k, ModeInclude: term.ModeAppCursor, Action: Esc(fmt.Sprintf("\x1bO%c", final))},
	}
	for _, mods := range modCombos {
		bs = append(bs, Binding{
			Key:    k,
			Mods:   mods,
			Action: Esc(fmt.Sprintf("\x1b[1;%d%c", xtermMod(mods), final)),
		})
	}
	return bs
}

// tildeKey emits ESC [ num ~ and its modified variants (PgUp, PgDn,
// Insert, Delete, F5-F12).
func tildeKey(k key.Key, num int) []Binding {
	bs := []Binding{
		{Key: k, Action: Esc(fmt.Sprintf("\x1b[%d~", num))},
	}
	for _, mods := range modCombos {
		bs = append(bs, Binding{
			Key:    k,
			Mods:   mods,
			Action: Esc(fmt.Sprintf("\x1b[%d;%d~", num, xtermMod(mods))),
		})
	}
	return bs
}

// functionKey emits SS3 for unmodified F1-F4 and the CSI form when
// modified.
func functionKey(k key.Key, final byte) []Binding {
	bs := []Binding{
		{Key: k, Action: Esc(fmt.Sprintf("\x1bO%c", final))},
	}
	for _, mods := range modCombos {
		bs = append(bs, Binding{
			Key:    k,
			Mods:   mods,
			Action: Esc(fmt.Sprintf("\x1b[1;%d%c", xtermMod(mods), final)),
		})
	}
	return bs
}

// ctrlChar maps the characters with a traditional control encoding to the
// control byte Ctrl produces.
var ctrlChar = map[rune]rune{
	'@':  0x00,
	' ':  0x00,
	'[':  0x1b,
	'\\': 0x1c,
	']':  0x1d,
	'^':  0x1e,
	'_':  0x1f,
	'?':  0x7f,
}

// DefaultTable builds the standard xterm-compatible layout.
func DefaultTable() *Table {
	t := NewTable()

	// Cursor keys honor DECCKM (application cursor keys).
	t.Add(cursorKey(key.KeyUp, 'A')...)
	t.Add(cursorKey(key.KeyDown, 'B')...)
	t.Add(cursorKey(key.KeyRight, 'C')...)
	t.Add(cursorKey(key.KeyLeft, 'D')...)
	t.Add(cursorKey(key.KeyHome, 'H')...)
	t.Add(cursorKey(key.KeyEnd, 'F')...)

	// Editing and paging keys.
	t.Add(tildeKey(key.KeyInsert, 2)...)
	t.Add(tildeKey(key.KeyDelete, 3)...)
	t.Add(tildeKey(key.KeyPageUp, 5)...)
	t.Add(tildeKey(key.KeyPageDown, 6)...)

	// Function keys.
	t.Add(functionKey(key.KeyF1, 'P')...)
	t.Add(functionKey(key.KeyF2, 'Q')...)
	t.Add(functionKey(key.KeyF3, 'R')...)
	t.Add(functionKey(key.KeyF4, 'S')...)
	t.Add(tildeKey(key.KeyF5, 15)...)
	t.Add(tildeKey(key.KeyF6, 17)...)
	t.Add(tildeKey(key.KeyF7, 18)...)
	t.Add(tildeKey(key.KeyF8, 19)...)
	t.Add(tildeKey(key.KeyF9, 20)...)
	t.Add(tildeKey(key.KeyF10, 21)...)
	t.Add(tildeKey(key.KeyF11, 23)...)
	t.Add(tildeKey(key.KeyF12, 24)...)

	// Plain specials.
	t.Add(
		Binding{Key: key.KeyEnter, Action: Char('\r')},
		Binding{Key: key.KeyTab, Action: Char('\t')},
		Binding{Key: key.KeyBackspace, Action: Char(0x7f)},
		Binding{Key: key.KeyEscape, Action: Char(0x1b)},
		Binding{Key: key.KeySpace, Action: Char(' ')},
		Binding{Key: key.KeyTab, Mods: key.ModShift, Action: Esc("\x1b[Z")},
		Binding{Key: key.KeyEnter, Mods: key.ModAlt, Action: Esc("\x1b\r")},
		Binding{Key: key.KeyBackspace, Mods: key.ModAlt, Action: Esc("\x1b\x7f")},
		Binding{Key: key.KeyBackspace, Mods: key.ModCtrl, Action: Char(0x08)},
	)

	// Ctrl+letter control bytes.
	for r := 'a'; r <= 'z'; r++ {
		ctrl := rune(r-'a') + 1
		t.Add(Binding{Key: key.KeyRune, Rune: r, Mods: key.ModCtrl, Action: Char(ctrl)})
		// Alt layered on top sends ESC then the control byte.
		t.Add(Binding{
			Key: key.KeyRune, Rune: r, Mods: key.ModCtrl | key.ModAlt,
			Action: Esc("\x1b" + string(ctrl)),
		})
		// Plain Alt+letter is ESC prefix plus the letter.
		t.Add(Binding{
			Key: key.KeyRune, Rune: r, Mods: key.ModAlt,
			Action: Esc("\x1b" + string(r)),
		})
	}

	// The historical Ctrl+symbol control bytes.
	for r, ctrl := range ctrlChar {
		t.Add(Binding{Key: key.KeyRune, Rune: r, Mods: key.ModCtrl, Action: Char(ctrl)})
	}
	t.Add(Binding{Key: key.KeySpace, Mods: key.ModCtrl, Action: Char(0x00)})

	return t
}
