package debugui

import (
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/theme"
)

// BoardView draws the playfield with the window draw list. It reads a snapshot, so what it shows
// is exactly what the game held when the frame began.
type BoardView struct {
	runner   *tetris.Runner
	palette  *theme.Palette
	cellSize float32
}

// NewBoardView draws runner's game with the palette palette points to, so a host theme switch
// shows up on the next frame.
func NewBoardView(runner *tetris.Runner, palette *theme.Palette, cellSize float32) *BoardView {
	return &BoardView{runner: runner, palette: palette, cellSize: cellSize}
}

func (bv *BoardView) Render() {
	snap := bv.runner.Game().Snapshot(0)
	w := float32(snap.Width) * bv.cellSize
	h := float32(snap.Height) * bv.cellSize

	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(w+20, h+40), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	fill := func(x, y int, c color.RGBA) {
		lo := imgui.NewVec2(origin.X+float32(x)*bv.cellSize+1, origin.Y+float32(y)*bv.cellSize+1)
		hi := imgui.NewVec2(lo.X+bv.cellSize-2, lo.Y+bv.cellSize-2)
		drawList.AddRectFilled(lo, hi, bv.u32(c))
	}

	drawList.AddRectFilled(origin, imgui.NewVec2(origin.X+w, origin.Y+h), bv.u32(bv.palette.Background))
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if cell := snap.Cell(x, y); cell.Filled {
				fill(x, y, bv.palette.Piece(cell.Kind))
			}
		}
	}
	for _, c := range snap.Ghost.Cells() {
		fill(c.X, c.Y, theme.Ghost(bv.palette.Piece(snap.Ghost.Kind)))
	}
	for _, c := range snap.Active.Cells() {
		if c.Y >= 0 {
			fill(c.X, c.Y, bv.palette.Piece(snap.Active.Kind))
		}
	}

	imgui.Dummy(imgui.NewVec2(w, h))
	imgui.End()
}

func (bv *BoardView) u32(c color.RGBA) uint32 {
	r, g, b, a := theme.Floats(c)
	return imgui.ColorU32Vec4(imgui.NewVec4(r, g, b, a))
}
