package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetris"
)

type binding struct {
	key    ebiten.Key
	action tetris.Action
	// held actions fire every tick the key is down instead of once per press.
	held bool
}

var bindings = []binding{
	{key: ebiten.KeyArrowLeft, action: tetris.ActionMoveLeft},
	{key: ebiten.KeyArrowRight, action: tetris.ActionMoveRight},
	{key: ebiten.KeyArrowDown, action: tetris.ActionSoftDrop, held: true},
	{key: ebiten.KeySpace, action: tetris.ActionHardDrop},
	{key: ebiten.KeyX, action: tetris.ActionRotateCW},
	{key: ebiten.KeyArrowUp, action: tetris.ActionRotateCW},
	{key: ebiten.KeyZ, action: tetris.ActionRotateCCW},
	{key: ebiten.KeyP, action: tetris.ActionPause},
	{key: ebiten.KeyR, action: tetris.ActionRestart},
}

// readKeys builds one tick of game input. justPressed and pressed are inpututil.IsKeyJustPressed
// and ebiten.IsKeyPressed outside tests.
func readKeys(justPressed, pressed func(ebiten.Key) bool) tetris.Input {
	var in tetris.Input
	for _, b := range bindings {
		down := justPressed(b.key)
		if b.held {
			down = pressed(b.key)
		}
		if down {
			in = in.With(b.action)
		}
	}
	return in
}
