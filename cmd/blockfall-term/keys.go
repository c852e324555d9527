package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

type command uint8

const (
	commandNone command = iota
	commandQuit
	commandGhost
	commandTheme
)

type keybinding struct {
	k tcell.Key
	r rune

	a tetris.Action
	c command
}

var keybindings = []*keybinding{
	{k: tcell.KeyLeft, a: tetris.ActionMoveLeft},
	{r: 'h', a: tetris.ActionMoveLeft},
	{k: tcell.KeyRight, a: tetris.ActionMoveRight},
	{r: 'l', a: tetris.ActionMoveRight},
	{k: tcell.KeyDown, a: tetris.ActionSoftDrop},
	{r: 'j', a: tetris.ActionSoftDrop},
	{r: ' ', a: tetris.ActionHardDrop},
	{k: tcell.KeyUp, a: tetris.ActionRotateCW},
	{r: 'k', a: tetris.ActionRotateCW},
	{r: 'x', a: tetris.ActionRotateCW},
	{r: 'z', a: tetris.ActionRotateCCW},
	{r: 'p', a: tetris.ActionPause},
	{r: 'r', a: tetris.ActionRestart},
	{r: 'g', c: commandGhost},
	{r: 't', c: commandTheme},
	{r: 'q', c: commandQuit},
	{k: tcell.KeyEscape, c: commandQuit},
	{k: tcell.KeyCtrlC, c: commandQuit},
}

// lookup maps a key event to a game action or a host command. Letters match either case.
func lookup(ev *tcell.EventKey) (tetris.Action, command) {
	k := ev.Key()
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	for _, bind := range keybindings {
		if bind.r != 0 {
			if k != tcell.KeyRune || bind.r != r {
				continue
			}
		} else if bind.k != k {
			continue
		}
		return bind.a, bind.c
	}
	return tetris.ActionNone, commandNone
}
