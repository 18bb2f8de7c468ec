package term

// Size is a pixel extent.
type Size struct {
	Width  float64
	Height float64
}

// CellMetrics is the pixel size of one monospace character cell.
type CellMetrics struct {
	Width  float64
	Height float64
}

// Command is an instruction handed by value to the backend. The pipeline
// constructs commands and does not retain them afterward.
type Command interface {
	isCommand()
}

// WriteCommand sends bytes to the backend's input stream.
type WriteCommand []byte

// ResizeCommand requests a grid resize computed from the available pixel
// size and the current cell metrics. Backends must tolerate redundant
// identical resizes without visible effect; the widget issues one every
// frame.
type ResizeCommand struct {
	Size    Size
	Metrics CellMetrics
}

// ScrollCommand scrolls the viewport by a signed number of lines.
// Positive values scroll toward earlier history.
type ScrollCommand int

func (WriteCommand) isCommand()  {}
func (ResizeCommand) isCommand() {}
func (ScrollCommand) isCommand() {}

// Backend is the terminal-state engine the view pipeline drives. All grid
// mutation goes through ProcessCommand; Sync exposes a read-only snapshot.
type Backend interface {
	// ID returns a stable identity for this backend instance, used to
	// derive the persistent widget key.
	ID() string

	// ProcessCommand applies a command. It must not block the caller.
	ProcessCommand(cmd Command)

	// Mode returns the current terminal mode flags.
	Mode() Mode

	// Sync returns the current renderable snapshot.
	Sync() Snapshot
}
