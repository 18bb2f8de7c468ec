package term

// Position is a logical grid coordinate. Row 0 is the top of the
// unscrolled grid; scrollback rows are negative.
type Position struct {
	Col int
	Row int
}

// Before returns true if p comes before other in reading order.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// SelectionRange is an inclusive stream selection between two positions.
type SelectionRange struct {
	Start Position
	End   Position
}

// Normalize returns a range where Start is never after End.
func (r SelectionRange) Normalize() SelectionRange {
	if r.End.Before(r.Start) {
		return SelectionRange{Start: r.End, End: r.Start}
	}
	return r
}

// Contains returns true if the given position falls within the selection.
func (r SelectionRange) Contains(p Position) bool {
	norm := r.Normalize()

	if p.Row < norm.Start.Row || p.Row > norm.End.Row {
		return false
	}
	if p.Row == norm.Start.Row && p.Col < norm.Start.Col {
		return false
	}
	if p.Row == norm.End.Row && p.Col > norm.End.Col {
		return false
	}
	return true
}

// Indexed pairs a cell with its logical grid position.
type Indexed struct {
	Position
	Cell
}

// Snapshot is a read-only projection of the backend grid for one frame.
// It is derived fresh on every Sync call and never mutated by the pipeline.
type Snapshot struct {
	// Cells are the visible cells in row-major order.
	Cells []Indexed

	// Cols and Rows are the viewport dimensions in cells.
	Cols int
	Rows int

	// DisplayOffset is the number of scrollback lines the viewport is
	// shifted into history. Viewport row = Position.Row + DisplayOffset.
	DisplayOffset int

	// Selection is the backend-reported selected range, if any.
	Selection *SelectionRange
}

// Selected returns true if the position is inside the reported selection.
func (s Snapshot) Selected(p Position) bool {
	return s.Selection != nil && s.Selection.Contains(p)
}
