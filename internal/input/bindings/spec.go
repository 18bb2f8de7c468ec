package bindings

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/termview/internal/input/key"
	"github.com/dshills/termview/internal/term"
)

// Spec is the configuration form of a binding, as it appears in the
// [[bindings]] tables of the config file.
type Spec struct {
	// Keys is the chord, e.g. "Ctrl+p" or "Shift+PageUp".
	Keys string `toml:"keys"`

	// Char is a single literal character to write. Mutually exclusive
	// with Esc.
	Char string `toml:"char,omitempty"`

	// Esc is an escape sequence to write verbatim. "\x1b" may be spelled
	// "\e" or "ESC " prefixed for readability.
	Esc string `toml:"esc,omitempty"`

	// Mode lists required terminal modes, comma separated. A leading "~"
	// negates a flag, e.g. "appcursor" or "~appcursor,altscreen".
	Mode string `toml:"mode,omitempty"`
}

// modeFlagNames maps config names to mode flags.
var modeFlagNames = map[string]term.Mode{
	"appcursor":      term.ModeAppCursor,
	"appkeypad":      term.ModeAppKeypad,
	"altscreen":      term.ModeAltScreen,
	"bracketedpaste": term.ModeBracketedPaste,
	"mousereport":    term.ModeMouseReport,
}

// parseModes parses the Mode field into include/exclude masks.
func parseModes(spec string) (include, exclude term.Mode, err error) {
	if strings.TrimSpace(spec) == "" {
		return term.ModeNone, term.ModeNone, nil
	}
	for _, part := range strings.Split(spec, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		negate := strings.HasPrefix(name, "~")
		name = strings.TrimPrefix(name, "~")
		flag, ok := modeFlagNames[name]
		if !ok {
			return 0, 0, fmt.Errorf("unknown mode flag %q", part)
		}
		if negate {
			exclude = exclude.With(flag)
		} else {
			include = include.With(flag)
		}
	}
	return include, exclude, nil
}

// unescape expands the readable escape spellings used in config files.
func unescape(s string) string {
	s = strings.ReplaceAll(s, `\e`, "\x1b")
	s = strings.ReplaceAll(s, `\x1b`, "\x1b")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")
	return s
}

// Compile turns a Spec into a Binding.
func (s Spec) Compile() (Binding, error) {
	ev, err := key.Parse(s.Keys)
	if err != nil {
		return Binding{}, fmt.Errorf("binding %q: %w", s.Keys, err)
	}

	include, exclude, err := parseModes(s.Mode)
	if err != nil {
		return Binding{}, fmt.Errorf("binding %q: %w", s.Keys, err)
	}

	b := Binding{
		Key:         ev.Key,
		Rune:        ev.Rune,
		Mods:        ev.Modifiers,
		ModeInclude: include,
		ModeExclude: exclude,
	}
	// Lookup folds case under Ctrl/Alt against lowercase binding runes.
	if b.Mods.HasCtrl() || b.Mods.HasAlt() {
		b.Rune = unicode.ToLower(b.Rune)
	}

	switch {
	case s.Char != "" && s.Esc != "":
		return Binding{}, fmt.Errorf("binding %q: char and esc are mutually exclusive", s.Keys)
	case s.Char != "":
		c := unescape(s.Char)
		r, size := utf8.DecodeRuneInString(c)
		if size != len(c) {
			return Binding{}, fmt.Errorf("binding %q: char must be a single character", s.Keys)
		}
		b.Action = Char(r)
	case s.Esc != "":
		b.Action = Esc(unescape(s.Esc))
	default:
		return Binding{}, fmt.Errorf("binding %q: one of char or esc is required", s.Keys)
	}

	return b, nil
}

// FromSpecs compiles user binding specs and appends them to the default
// table, so user entries take precedence over equally specific defaults.
func FromSpecs(specs []Spec) (*Table, error) {
	t := DefaultTable()
	for i, s := range specs {
		b, err := s.Compile()
		if err != nil {
			return nil, fmt.Errorf("bindings[%d]: %w", i, err)
		}
		t.Add(b)
	}
	return t, nil
}
