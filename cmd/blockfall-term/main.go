package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/theme"
)

const previewCount = 3

// settings are flipped from the event goroutine and read on the tick goroutine.
type settings struct {
	showGhost atomic.Bool
	light     atomic.Bool
}

func (s *settings) view() view {
	kind := theme.Dark
	if s.light.Load() {
		kind = theme.Light
	}
	return view{palette: theme.For(kind), showGhost: s.showGhost.Load()}
}

func main() {
	seed := flag.Uint64("seed", 0, "Piece sequence seed (0 picks a random sequence)")
	pulse := flag.Bool("pulse", false, "Start with pulse gravity enabled")
	tick := flag.Duration("tick", time.Second/60, "Simulation tick interval")
	logPath := flag.String("log", "", "Write log output to this file (default: discard)")
	themeName := flag.String("theme", "dark", "Color theme: dark or light")
	flag.Parse()

	kind, err := theme.Parse(*themeName)
	if err != nil {
		log.Fatalf("Invalid -theme: %v", err)
	}
	if *tick <= 0 {
		log.Fatalf("Invalid -tick %v: must be positive", *tick)
	}

	// The screen owns the terminal, so log lines go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	var opts []tetris.Option
	if *seed != 0 {
		opts = append(opts, tetris.WithSeed(*seed))
	}
	runner := tetris.NewRunner(tetris.New(opts...))
	runner.SetPulseGravity(*pulse)

	var s settings
	s.showGhost.Store(true)
	s.light.Store(kind == theme.Light)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var latch tetris.InputLatch
	go pollEvents(screen, &latch, &s, cancel)

	log.Printf("Starting blockfall-term (seed=%d, pulse=%v, tick=%v)", *seed, *pulse, *tick)

	runner.Run(ctx, *tick, latch.Take, func(g *tetris.Game) {
		snap := g.Snapshot(previewCount)
		s.view().draw(screen, &snap)
		screen.Show()
	})

	stats := runner.Stats()
	log.Printf("Stopped after %d ticks (avg %v, max %v); score %d",
		stats.Ticks, stats.AvgDuration, stats.MaxDuration, runner.Game().Score())
}

// pollEvents feeds key presses into the latch until the screen is finalized or a quit key is
// pressed.
func pollEvents(screen tcell.Screen, latch *tetris.InputLatch, s *settings, quit context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action, cmd := lookup(ev)
			switch cmd {
			case commandQuit:
				quit()
				return
			case commandGhost:
				s.showGhost.Store(!s.showGhost.Load())
			case commandTheme:
				s.light.Store(!s.light.Load())
			}
			if action != tetris.ActionNone {
				latch.Press(action)
			}
		}
	}
}
