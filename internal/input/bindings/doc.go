// Package bindings provides the mode- and modifier-aware lookup from a
// pressed key to the bytes a terminal application expects.
//
// A Binding maps a key chord to an Action (a literal character or an
// escape sequence) and may be constrained to terminal modes: ModeInclude
// flags must all be active and ModeExclude flags must all be inactive for
// the binding to match. This is how the same physical key resolves
// differently under application-cursor-keys mode.
//
// # Lookup Precedence
//
// When multiple bindings match a chord, precedence is determined by:
//  1. Specificity (mode-constrained beats unconstrained, more modifier
//     bits beat fewer)
//  2. Registration order (later wins, so user bindings appended after the
//     defaults override them)
//
// A chord with no matching binding resolves to no action; the resolver
// treats that as Ignore.
package bindings
