// Package main is a self-contained demo host for the terminal view
// widget. It runs the widget pipeline against an in-memory local-echo
// backend inside a tcell screen, with cell metrics pinned to 1x1 so the
// widget's pixel space maps directly onto terminal cells.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termview/internal/config"
	"github.com/dshills/termview/internal/renderer/font"
	"github.com/dshills/termview/internal/term"
	"github.com/dshills/termview/internal/view"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "termview - terminal widget demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termview [options]\n\n")
		fmt.Fprintf(os.Stderr, "Keys go to a local-echo backend. Ctrl+C exits.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("termview %s (%s)\n", version, commit)
		return 0
	}

	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	backend := term.NewScreen(term.ScreenOptions{LocalEcho: true})

	v, err := buildView(backend, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var mu sync.Mutex // guards v across reloads
	if configPath != "" {
		w, err := config.Watch(configPath, func(cfg *config.Config) {
			nv, err := buildView(backend, cfg)
			if err != nil {
				return
			}
			mu.Lock()
			v = nv
			mu.Unlock()
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer w.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	h := newHost(screen)
	states := view.NewStateStore()
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	for {
		h.beginFrame()

	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return 0
				}
				if k, isKey := ev.(*tcell.EventKey); isKey && k.Key() == tcell.KeyCtrlC {
					close(quit)
					return 0
				}
				h.push(ev)
			default:
				break drain
			}
		}

		mu.Lock()
		v.Show(h, states.Load(backend.ID()))
		mu.Unlock()
		h.flush()

		select {
		case <-signals:
			close(quit)
			return 0
		case <-ticker.C:
		}
	}
}

// buildView assembles a view from config, falling back to defaults for
// anything unset. The demo draws into terminal cells, so cell metrics
// are pinned to 1x1 and the configured font only matters to pixel hosts.
func buildView(backend term.Backend, cfg *config.Config) (*view.TerminalView, error) {
	th, err := cfg.BuildTheme()
	if err != nil {
		return nil, err
	}
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	return view.New(backend).
		WithTheme(th).
		WithFont(font.Fixed(1, 1)).
		WithBindings(table), nil
}
