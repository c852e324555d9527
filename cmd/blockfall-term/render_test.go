package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func background(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDrawBoard(t *testing.T) {
	s := newTestScreen(t)
	g := tetris.New(tetris.WithSeed(3))
	g.Board().Set(0, 19, tetris.Cell{Kind: tetris.Z, Filled: true})
	snap := g.Snapshot(3)

	pal := theme.For(theme.Dark)
	view{palette: pal, showGhost: true}.draw(s, &snap)

	col := leftMargin + 1
	row := topMargin + 1 + 19
	assert.Equal(t, rgb(pal.Piece(tetris.Z)), background(s, col, row))
	assert.Equal(t, rgb(pal.Piece(tetris.Z)), background(s, col+1, row), "cells are two columns wide")

	for _, c := range snap.Active.Cells() {
		assert.Equal(t, rgb(pal.Piece(snap.Active.Kind)), background(s, leftMargin+1+c.X*cellWidth, topMargin+1+c.Y))
	}

	ghost := snap.Ghost.Cells()[0]
	r, _, _, _ := s.GetContent(leftMargin+1+ghost.X*cellWidth, topMargin+1+ghost.Y)
	assert.Equal(t, '░', r)

	r, _, _, _ = s.GetContent(leftMargin, topMargin)
	assert.Equal(t, '┌', r)
}

func TestDrawWithoutGhost(t *testing.T) {
	s := newTestScreen(t)
	snap := tetris.New(tetris.WithSeed(3)).Snapshot(0)

	view{palette: theme.For(theme.Light)}.draw(s, &snap)

	ghost := snap.Ghost.Cells()[0]
	r, _, _, _ := s.GetContent(leftMargin+1+ghost.X*cellWidth, topMargin+1+ghost.Y)
	assert.NotEqual(t, '░', r)
}
