package view

import (
	"github.com/dshills/termview/internal/input/bindings"
	"github.com/dshills/termview/internal/renderer"
	"github.com/dshills/termview/internal/renderer/font"
	"github.com/dshills/termview/internal/renderer/theme"
	"github.com/dshills/termview/internal/term"
)

// TerminalView drives one backend through the per-frame pipeline. It is
// configured once with builder calls and then shown every frame.
type TerminalView struct {
	backend term.Backend
	theme   *theme.Theme
	face    *font.Face
	table   *bindings.Table
	grid    *renderer.Grid
}

// New creates a view over a backend with the default theme, font, and
// key bindings.
func New(backend term.Backend) *TerminalView {
	v := &TerminalView{
		backend: backend,
		theme:   theme.Default(),
		face:    font.Default(),
		table:   bindings.DefaultTable(),
	}
	v.grid = renderer.NewGrid(v.theme, v.face.Metrics())
	return v
}

// WithTheme replaces the color theme.
func (v *TerminalView) WithTheme(th *theme.Theme) *TerminalView {
	v.theme = th
	v.grid = renderer.NewGrid(th, v.face.Metrics())
	return v
}

// WithFont replaces the font face. Cell metrics change with it; the
// next frame's resize command carries the new metrics to the backend.
func (v *TerminalView) WithFont(f *font.Face) *TerminalView {
	v.face = f
	v.grid = renderer.NewGrid(v.theme, f.Metrics())
	return v
}

// WithBindings replaces the key binding table.
func (v *TerminalView) WithBindings(t *bindings.Table) *TerminalView {
	v.table = t
	return v
}

// Backend returns the backend this view drives.
func (v *TerminalView) Backend() term.Backend {
	return v.backend
}

// Show runs one frame of the pipeline: focus, resize, input, render.
//
// The resize command is issued unconditionally every frame; the backend
// treats redundant geometry as a no-op. Input is consumed only while the
// widget holds focus, in arrival order, each event resolving to at most
// one backend command. Rendering always happens, focused or not.
func (v *TerminalView) Show(frame Frame, st *State) {
	if frame.Clicked() {
		frame.RequestFocus()
	}
	st.IsFocused = frame.HasFocus()

	v.backend.ProcessCommand(term.ResizeCommand{
		Size:    frame.Size(),
		Metrics: v.face.Metrics(),
	})

	if st.IsFocused {
		for _, ev := range frame.Events() {
			if cmd, ok := v.resolve(ev, st).Command(); ok {
				v.backend.ProcessCommand(cmd)
			}
		}
	}

	snap := v.backend.Sync()
	v.grid.Render(snap, frame.Origin(), frame.Painter())
}
