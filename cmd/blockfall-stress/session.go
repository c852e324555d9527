package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

// session is one game driven by pseudo-random input.
type session struct {
	id     int
	runner *tetris.Runner
	rng    *rand.Rand
	ticks  int64

	restarts int
	// Restart wipes the game's counters, so totals from earlier games are folded in here first.
	totals GameTotals
}

func newSession(id int, seed uint64, pulse bool) *session {
	runner := tetris.NewRunner(tetris.New(tetris.WithSeed(seed)))
	runner.SetPulseGravity(pulse)
	return &session{
		id:     id,
		runner: runner,
		rng:    rand.New(rand.NewPCG(seed, uint64(id))),
	}
}

// Input chances per tick, out of 1000.
const (
	chanceMove     = 200
	chanceRotate   = 120
	chanceSoftDrop = 150
	chanceHardDrop = 40
	chancePause    = 2
	chanceRestart  = 1
)

func (s *session) roll(perMille int) bool {
	return s.rng.IntN(1000) < perMille
}

// randomInput favors movement and drops; pause and restart stay rare so games run long enough
// to clear lines and level up.
func (s *session) randomInput() tetris.Input {
	var in tetris.Input
	if s.roll(chanceMove) {
		if s.rng.IntN(2) == 0 {
			in.Left = true
		} else {
			in.Right = true
		}
	}
	if s.roll(chanceRotate) {
		if s.rng.IntN(2) == 0 {
			in.RotateCW = true
		} else {
			in.RotateCCW = true
		}
	}
	in.SoftDrop = s.roll(chanceSoftDrop)
	in.HardDrop = s.roll(chanceHardDrop)
	in.Pause = s.roll(chancePause)
	in.Restart = s.roll(chanceRestart)

	// A paused game only answers to pause and restart, so unpause quickly.
	if s.runner.Game().Paused() && s.roll(100) {
		in.Pause = true
	}
	return in
}

// step runs one tick and returns any broken invariants.
func (s *session) step(dt float64) []string {
	in := s.randomInput()
	if in.Restart {
		s.fold()
		s.restarts++
	}
	s.runner.Once(dt, in)
	s.ticks++

	g := s.runner.Game()
	s.totals.BestScore = max(s.totals.BestScore, g.Score())
	s.totals.BestLevel = max(s.totals.BestLevel, g.Level())
	return checkInvariants(g)
}

// fold adds the current game's counters to the session totals.
func (s *session) fold() {
	stats := s.runner.Game().Stats()
	s.totals.Locked += stats.Locked()
	for n := 1; n <= 4; n++ {
		s.totals.Clears[n-1] += stats.Clears(n)
	}
	s.totals.TopOuts += stats.TopOuts()
	s.totals.HardDrops += stats.HardDrops()
}

// addTo folds the live game and adds everything to totals. Call it once, after the last step.
func (s *session) addTo(totals *GameTotals) {
	s.fold()
	totals.Locked += s.totals.Locked
	for i := range totals.Clears {
		totals.Clears[i] += s.totals.Clears[i]
	}
	totals.TopOuts += s.totals.TopOuts
	totals.HardDrops += s.totals.HardDrops
	totals.Restarts += s.restarts
	totals.BestScore = max(totals.BestScore, s.totals.BestScore)
	totals.BestLevel = max(totals.BestLevel, s.totals.BestLevel)
}
