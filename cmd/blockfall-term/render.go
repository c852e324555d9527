package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/theme"
)

const (
	leftMargin = 2
	topMargin  = 1
	// Each board cell is two terminal columns wide so cells come out roughly square.
	cellWidth = 2
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawText places text at the specified coordinates with the provided style.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawCell(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	if y < 0 {
		return
	}
	col := leftMargin + 1 + x*cellWidth
	row := topMargin + 1 + y
	s.SetContent(col, row, r, nil, style)
	s.SetContent(col+1, row, r, nil, style)
}

type view struct {
	palette   theme.Palette
	showGhost bool
}

// draw renders a snapshot. It does not call Show.
func (v view) draw(s tcell.Screen, snap *tetris.Snapshot) {
	pal := v.palette
	base := tcell.StyleDefault.Background(rgb(pal.Background)).Foreground(rgb(pal.Text))
	frame := base.Foreground(rgb(pal.Accent))
	s.SetStyle(base)
	s.Clear()

	right := leftMargin + 1 + snap.Width*cellWidth
	bottom := topMargin + 1 + snap.Height
	for row := topMargin; row <= bottom; row++ {
		s.SetContent(leftMargin, row, '│', nil, frame)
		s.SetContent(right, row, '│', nil, frame)
	}
	for col := leftMargin; col <= right; col++ {
		s.SetContent(col, topMargin, '─', nil, frame)
		s.SetContent(col, bottom, '─', nil, frame)
	}
	s.SetContent(leftMargin, topMargin, '┌', nil, frame)
	s.SetContent(right, topMargin, '┐', nil, frame)
	s.SetContent(leftMargin, bottom, '└', nil, frame)
	s.SetContent(right, bottom, '┘', nil, frame)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if cell := snap.Cell(x, y); cell.Filled {
				drawCell(s, x, y, base.Background(rgb(pal.Piece(cell.Kind))), ' ')
			}
		}
	}

	if v.showGhost {
		ghost := base.Foreground(rgb(pal.Piece(snap.Ghost.Kind)))
		for _, c := range snap.Ghost.Cells() {
			drawCell(s, c.X, c.Y, ghost, '░')
		}
	}
	active := base.Background(rgb(pal.Piece(snap.Active.Kind)))
	for _, c := range snap.Active.Cells() {
		drawCell(s, c.X, c.Y, active, ' ')
	}

	v.drawPanel(s, snap, right+3, base)
}

func (v view) drawPanel(s tcell.Screen, snap *tetris.Snapshot, x int, base tcell.Style) {
	heading := base.Foreground(rgb(v.palette.Accent)).Bold(true)
	y := topMargin

	drawText(s, x, y, heading, "NEXT")
	y += 2
	for _, kind := range snap.Preview {
		style := base.Background(rgb(v.palette.Piece(kind)))
		for _, b := range tetris.Blocks(kind, tetris.R0) {
			col := x + (b.X+1)*cellWidth
			s.SetContent(col, y+b.Y, ' ', nil, style)
			s.SetContent(col+1, y+b.Y, ' ', nil, style)
		}
		y += 3
	}

	y++
	drawText(s, x, y, heading, "STATS")
	y++
	for _, line := range []string{
		fmt.Sprintf("Score %06d", snap.Score),
		fmt.Sprintf("Level %d", snap.Level+1),
		fmt.Sprintf("Lines %d", snap.Lines),
	} {
		drawText(s, x, y, base, line)
		y++
	}
	if snap.Pulse {
		drawText(s, x, y, base.Foreground(rgb(v.palette.Highlight)), "Pulse gravity")
		y++
	}
	if snap.Paused {
		drawText(s, x, y, heading, "PAUSED")
	}
	y += 2

	for _, line := range []string{
		"←→/hl move",
		"↓/j   soft drop",
		"space hard drop",
		"↑/k/x rotate cw",
		"z     rotate ccw",
		"p pause r restart",
		"g ghost t theme",
		"q quit",
	} {
		drawText(s, x, y, base, line)
		y++
	}
}
