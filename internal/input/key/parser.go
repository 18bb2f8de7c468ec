package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse parses a key specification into a press event.
//
// Accepted forms: a bare character ("a", "?"), a named key ("Up", "PgDn"),
// or either prefixed with modifiers joined by '+' or '-' ("Ctrl+C", "C-c",
// "Shift+PageUp"). The final segment is the key; everything before it must
// name a modifier.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, fmt.Errorf("empty key spec")
	}

	// A bare single character is the common case, and may itself be a
	// separator character ("+", "-").
	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return NewRunePress(r, ModNone), nil
	}

	sep := "+"
	if !strings.Contains(spec, "+") && strings.Contains(spec, "-") {
		sep = "-"
	}

	parts := strings.Split(spec, sep)

	// A trailing separator means the key itself is the separator rune,
	// e.g. "Ctrl++" or "C--".
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]
	if keyPart == "" {
		keyPart = sep
		modParts = parts[:len(parts)-2]
	}

	var mods Modifier
	for _, p := range modParts {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("unknown modifier %q in %q", p, spec)
		}
		mods = mods.With(mod)
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewPress(k, mods), nil
	}
	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return NewRunePress(r, mods), nil
	}
	return Event{}, fmt.Errorf("unknown key %q in %q", keyPart, spec)
}

// MustParse parses a key specification and panics on error. For use with
// compile-time constant specs such as the default binding table.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}
