// Package view implements the terminal widget pipeline: each frame it
// claims focus on click, keeps the backend grid sized to the available
// area, resolves host input events into backend commands, and paints the
// current snapshot.
//
// The pipeline is stateless between frames except for the small State
// record persisted per backend instance (focus, drag, scroll remainder,
// modifiers). All terminal semantics live behind the term.Backend
// interface; the view never inspects grid contents beyond rendering.
package view
