package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/theme"
)

const (
	baseCellSize = 24
	margin       = 20
	panelWidth   = 180
	previewCount = 3
)

// layout positions the playfield and side panel for one cell size.
type layout struct {
	cell   float32
	boardX float32
	boardY float32
	panelX float32
}

func newLayout(scale float64) layout {
	cell := float32(baseCellSize * scale)
	return layout{
		cell:   cell,
		boardX: margin,
		boardY: margin,
		panelX: margin*2 + cell*tetris.BoardWidth,
	}
}

// screenSize is the window size that fits a board of rows rows and the panel.
func (l layout) screenSize(rows int) (int, int) {
	return int(l.panelX) + panelWidth, int(l.boardY*2 + l.cell*float32(rows))
}

func (l layout) drawCell(dst *ebiten.Image, x, y int, c color.RGBA) {
	if y < 0 {
		return
	}
	px := l.boardX + float32(x)*l.cell
	py := l.boardY + float32(y)*l.cell
	vector.DrawFilledRect(dst, px+1, py+1, l.cell-2, l.cell-2, c, false)
}

func (l layout) drawPiece(dst *ebiten.Image, p tetris.ActivePiece, c color.RGBA) {
	for _, cell := range p.Cells() {
		l.drawCell(dst, cell.X, cell.Y, c)
	}
}

func (l layout) drawBoard(dst *ebiten.Image, snap *tetris.Snapshot, pal theme.Palette, showGhost bool) {
	w := l.cell * float32(snap.Width)
	h := l.cell * float32(snap.Height)
	vector.DrawFilledRect(dst, l.boardX, l.boardY, w, h, pal.Panel, false)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			px := l.boardX + float32(x)*l.cell
			py := l.boardY + float32(y)*l.cell
			vector.StrokeRect(dst, px, py, l.cell, l.cell, 1, pal.Grid, false)

			if cell := snap.Cell(x, y); cell.Filled {
				l.drawCell(dst, x, y, pal.Piece(cell.Kind))
			}
		}
	}
	vector.StrokeRect(dst, l.boardX, l.boardY, w, h, 2, pal.Accent, false)

	if showGhost {
		l.drawPiece(dst, snap.Ghost, theme.Ghost(pal.Piece(snap.Ghost.Kind)))
	}
	l.drawPiece(dst, snap.Active, pal.Piece(snap.Active.Kind))
}

func (l layout) drawPanel(dst *ebiten.Image, snap *tetris.Snapshot, pal theme.Palette) {
	x := int(l.panelX)
	y := int(l.boardY)

	ebitenutil.DebugPrintAt(dst, "NEXT", x, y)
	y += 20

	small := l.cell / 2
	for _, kind := range snap.Preview {
		for _, b := range tetris.Blocks(kind, tetris.R0) {
			px := float32(x) + small + float32(b.X+1)*small
			py := float32(y) + float32(b.Y+1)*small
			vector.DrawFilledRect(dst, px, py, small-1, small-1, pal.Piece(kind), false)
		}
		y += int(small * 4)
	}

	y += 10
	for _, line := range []string{
		fmt.Sprintf("SCORE %06d", snap.Score),
		fmt.Sprintf("LEVEL %d", snap.Level+1),
		fmt.Sprintf("LINES %d", snap.Lines),
		"",
		fmt.Sprintf("GRAVITY %.2fs", snap.Gravity),
	} {
		ebitenutil.DebugPrintAt(dst, line, x, y)
		y += 16
	}
	if snap.Pulse {
		ebitenutil.DebugPrintAt(dst, "PULSE ON", x, y)
		y += 16
	}

	y += 10
	for _, line := range []string{
		"<- -> move",
		"down  soft drop",
		"space hard drop",
		"z/x   rotate",
		"p pause  r restart",
		"g ghost  t theme",
		"f1 inspector",
	} {
		ebitenutil.DebugPrintAt(dst, line, x, y)
		y += 16
	}

	if snap.Paused {
		w := l.cell * float32(snap.Width)
		cy := l.boardY + l.cell*float32(snap.Height)/2
		vector.DrawFilledRect(dst, l.boardX, cy-20, w, 40, pal.Background, false)
		ebitenutil.DebugPrintAt(dst, "PAUSED", int(l.boardX+w/2)-18, int(cy)-8)
	}
}
