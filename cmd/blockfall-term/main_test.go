package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/theme"
	"github.com/stretchr/testify/assert"
)

func TestPollEvents(t *testing.T) {
	screen := newTestScreen(t)

	var latch tetris.InputLatch
	var s settings
	s.showGhost.Store(true)

	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		pollEvents(screen, &latch, &s, func() { close(quit) })
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 't', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pollEvents did not return after quit")
	}

	select {
	case <-quit:
	default:
		t.Fatal("quit was not called")
	}

	assert.Equal(t, tetris.Input{Left: true, HardDrop: true}, latch.Take())
	assert.False(t, s.showGhost.Load())
	assert.Equal(t, theme.For(theme.Light), s.view().palette)
}
