// Package mouse converts pointer-wheel motion into discrete line-scroll
// counts.
//
// High-resolution pointer devices report many small pixel-granular deltas
// per tick. Scrolling the grid for each one causes judder, so the
// Accumulator defers sub-line motion: it accumulates pixels across frames
// and releases whole lines only once a full cell height has built up,
// keeping the fractional remainder for the next event.
package mouse
