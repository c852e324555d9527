package main

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// checkInvariants returns a description of every rule g currently breaks.
func checkInvariants(g *tetris.Game) []string {
	var violations []string
	fail := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	board := g.Board()
	active := g.Active()
	if board.Collides(active) {
		fail("active %s at (%d, %d) rot %s overlaps the board", active.Kind, active.X, active.Y, active.Rot)
	}

	for y := 0; y < board.Height(); y++ {
		if board.RowFull(y) {
			fail("row %d is full after the tick", y)
		}
	}

	if g.Level() != g.Lines()/10 {
		fail("level %d does not match %d lines", g.Level(), g.Lines())
	}
	if g.Score()%100 != 0 {
		fail("score %d is not a multiple of 100", g.Score())
	}

	base := g.BaseGravityInterval()
	if base < tetris.MinGravity {
		fail("base gravity %v is below the floor", base)
	}
	interval := g.GravityInterval()
	if g.PulseGravity() {
		// A level-up under pulse reaches the interval on the following tick, so it may still be
		// scaled from the previous, 1/0.9 larger base.
		lo, hi := 0.5*base, 1.5*base/0.9
		if interval < lo-1e-9 || interval > hi+1e-9 {
			fail("pulsed gravity %v outside [%v, %v]", interval, lo, hi)
		}
	} else if interval != base {
		fail("gravity %v differs from base %v with pulse off", interval, base)
	}

	stats := g.Stats()
	if stats.TotalSpawned() != stats.Locked()+1 {
		fail("%d spawned but %d locked", stats.TotalSpawned(), stats.Locked())
	}

	return violations
}
