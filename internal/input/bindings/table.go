package bindings

import (
	"github.com/dshills/termview/internal/input/key"
	"github.com/dshills/termview/internal/term"
)

// Table is an ordered set of bindings. Lookup is linear; terminal layouts
// are a few hundred entries and lookups happen once per keypress.
type Table struct {
	bindings []Binding
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add appends bindings. Later additions override earlier equally specific
// ones, so user bindings should be added after the defaults.
func (t *Table) Add(bs ...Binding) *Table {
	t.bindings = append(t.bindings, bs...)
	return t
}

// Len returns the number of registered bindings.
func (t *Table) Len() int {
	return len(t.bindings)
}

// Get resolves a key chord under the given terminal mode. It returns None
// when nothing matches. The event's Pressed flag is not consulted here;
// filtering releases is the resolver's job.
func (t *Table) Get(ev key.Event, mode term.Mode) Action {
	best := None
	bestScore := -1

	for _, b := range t.bindings {
		if !b.Matches(ev, mode) {
			continue
		}
		// >= so registration order breaks ties in favor of later entries.
		if score := b.Specificity(); score >= bestScore {
			best = b.Action
			bestScore = score
		}
	}
	return best
}
