package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
	"github.com/plus3/blockfall/tetris/theme"
)

const tps = 60

type Game struct {
	runner *tetris.Runner
	latch  *tetris.InputLatch
	layout layout

	themeKind theme.Kind
	palette   theme.Palette
	showGhost bool

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
	perf    *debugui.PerformanceStats
	timer   *debugui.FrameTimer
}

func main() {
	seed := flag.Uint64("seed", 0, "Piece sequence seed (0 picks a random sequence)")
	pulse := flag.Bool("pulse", false, "Start with pulse gravity enabled")
	debug := flag.Bool("debug", false, "Show the ImGui inspector")
	scale := flag.Float64("scale", 1.0, "Cell size multiplier")
	themeName := flag.String("theme", "dark", "Color theme: dark or light")
	flag.Parse()

	kind, err := theme.Parse(*themeName)
	if err != nil {
		log.Fatalf("Invalid -theme: %v", err)
	}
	if *scale <= 0 {
		log.Fatalf("Invalid -scale %v: must be positive", *scale)
	}

	var opts []tetris.Option
	if *seed != 0 {
		opts = append(opts, tetris.WithSeed(*seed))
	}
	runner := tetris.NewRunner(tetris.New(opts...))
	runner.SetPulseGravity(*pulse)

	g := &Game{
		runner:    runner,
		latch:     &tetris.InputLatch{},
		layout:    newLayout(*scale),
		themeKind: kind,
		palette:   theme.For(kind),
		showGhost: true,
	}

	width, height := g.layout.screenSize(tetris.BoardHeight)
	if *debug {
		g.attachInspector(width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetTPS(tps)

	log.Printf("Starting blockfall (seed=%d, pulse=%v, theme=%s)", *seed, *pulse, kind)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

// attachInspector opens a window large enough for the ImGui windows next to the game.
func (g *Game) attachInspector(width, height int) {
	const inspectorWidth = 640
	g.imgui = debugui_ebiten.NewImguiBackend("Blockfall (inspector)", width+inspectorWidth, max(height, 720))
	g.perf = debugui.NewPerformanceStats(120)
	g.timer = debugui.NewFrameTimer()

	inspector := debugui.NewGameInspector(g.runner, g.latch, &g.showGhost, previewCount)
	board := debugui.NewBoardView(g.runner, &g.palette, 12)
	g.overlay = debugui.NewOverlay(
		debugui.ImguiItem{Render: inspector.Render},
		debugui.ImguiItem{Render: func() { g.perf.Render(g.runner) }},
		debugui.ImguiItem{Render: board.Render},
	)
	// Game drawing shifts right so the ImGui windows do not cover the board.
	g.layout.boardX += inspectorWidth
	g.layout.panelX += inspectorWidth
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGhost = !g.showGhost
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.themeKind = g.themeKind.Toggle()
		g.palette = theme.For(g.themeKind)
	}
	if g.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Visible = !g.overlay.Visible
	}

	in := g.latch.Take()
	if g.overlay == nil || !g.overlay.Input.WantCaptureKeyboard {
		in = in.Merge(readKeys(inpututil.IsKeyJustPressed, ebiten.IsKeyPressed))
	}
	g.runner.Once(1.0/float64(ebiten.TPS()), in)

	if g.imgui != nil {
		g.perf.Record(g.timer.Delta())
		g.imgui.Update(g.overlay)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	snap := g.runner.Game().Snapshot(previewCount)
	g.layout.drawBoard(screen, &snap, g.palette, g.showGhost)
	g.layout.drawPanel(screen, &snap, g.palette)

	if g.imgui != nil {
		g.imgui.DrawOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
