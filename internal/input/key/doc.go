// Package key defines the keyboard event model consumed by the input
// resolver: keys, modifier masks, press/release events, and a parser for
// the key specifications used in bindings configuration.
//
// # Key Specifications
//
// Binding specs use a readable notation:
//
//	"a"          - Single character
//	"Ctrl+C"     - Control plus a character
//	"C-c"        - Same, compact notation
//	"Up"         - Special key by name
//	"Shift+PgUp" - Modified special key
package key
