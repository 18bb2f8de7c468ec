// Package term defines the surface the view pipeline consumes from a
// terminal backend: the cell and color model, terminal mode flags, the
// per-frame renderable snapshot, and the command types the pipeline sends
// back (write, resize, scroll).
//
// The package also ships Screen, an in-memory reference backend that stores
// a character grid with scrollback and selection state. Screen does not
// parse escape sequences and does not own a process; it exists so hosts and
// tests have a Backend to drive. A production backend wraps a real terminal
// engine behind the same interface.
//
// # Coordinates
//
// Snapshot cells are addressed in logical grid coordinates: row 0 is the
// top of the unscrolled grid and scrollback rows are negative. When the
// viewport is scrolled back by N lines the visible cells span rows
// [-N, Rows-1-N] and the snapshot reports DisplayOffset = N, so a renderer
// recovers the viewport row as Row + DisplayOffset. Selection ranges use
// the same coordinate space.
package term
