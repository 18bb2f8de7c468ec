// Package config loads widget configuration from TOML: font selection,
// color theme, and user key bindings. A Watcher polls the file for
// changes so running hosts pick up edits without restarting.
package config
