package bindings

import "fmt"

// Kind discriminates the Action variants.
type Kind uint8

const (
	// KindNone means no binding matched; the event is ignored.
	KindNone Kind = iota

	// KindChar writes a single character, UTF-8 encoded.
	KindChar

	// KindEsc writes an escape or control sequence verbatim.
	KindEsc
)

// Action is what a binding lookup produces. The zero value is the no-op.
type Action struct {
	kind Kind
	char rune
	seq  string
}

// None is the no-op action returned for unmapped chords.
var None = Action{}

// Char returns an action that writes the character's UTF-8 encoding.
func Char(r rune) Action {
	return Action{kind: KindChar, char: r}
}

// Esc returns an action that writes the sequence bytes verbatim.
func Esc(seq string) Action {
	return Action{kind: KindEsc, seq: seq}
}

// Kind reports the action variant.
func (a Action) Kind() Kind {
	return a.kind
}

// IsNone returns true for the no-op action.
func (a Action) IsNone() bool {
	return a.kind == KindNone
}

// Bytes returns the bytes this action writes to the backend.
// The no-op action returns nil.
func (a Action) Bytes() []byte {
	switch a.kind {
	case KindChar:
		return []byte(string(a.char))
	case KindEsc:
		return []byte(a.seq)
	default:
		return nil
	}
}

// String returns a debug representation.
func (a Action) String() string {
	switch a.kind {
	case KindChar:
		return fmt.Sprintf("Char(%q)", a.char)
	case KindEsc:
		return fmt.Sprintf("Esc(%q)", a.seq)
	default:
		return "None"
	}
}
