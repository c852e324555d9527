package tetris_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence deals a fixed cycle of kinds.
type sequence struct {
	kinds []tetris.Tetromino
	i     int
}

func (s *sequence) Next() tetris.Tetromino {
	t := s.kinds[s.i%len(s.kinds)]
	s.i++
	return t
}

func (s *sequence) Peek(n int) []tetris.Tetromino {
	out := make([]tetris.Tetromino, max(n, 0))
	for k := range out {
		out[k] = s.kinds[(s.i+k)%len(s.kinds)]
	}
	return out
}

func dealing(kinds ...tetris.Tetromino) tetris.Option {
	return tetris.WithRandomizer(func() tetris.Randomizer {
		return &sequence{kinds: kinds}
	})
}

// press feeds the same zero-duration input n times.
func press(g *tetris.Game, in tetris.Input, n int) {
	for range n {
		g.Update(0, in)
	}
}

func TestNewGame(t *testing.T) {
	g := tetris.New(dealing(tetris.T, tetris.S))

	assert.Equal(t, tetris.NewActivePiece(tetris.T, 5, 0), g.Active())
	assert.Equal(t, []tetris.Tetromino{tetris.S, tetris.T, tetris.S}, g.Preview(3))
	assert.Equal(t, uint64(0), g.Score())
	assert.Equal(t, 0, g.Level())
	assert.Equal(t, 0, g.Lines())
	assert.False(t, g.Paused())
	assert.False(t, g.PulseGravity())
	assert.Equal(t, tetris.DefaultGravity, g.GravityInterval())
	assert.Equal(t, tetris.DefaultGravity, g.BaseGravityInterval())
	assert.Equal(t, 0, g.Board().Filled())
	assert.Equal(t, 1, g.Stats().Spawned(tetris.T))
}

func TestNewGamePanicsOnInvalidOptions(t *testing.T) {
	assert.Panics(t, func() { tetris.New(tetris.WithGravity(0)) })
	assert.Panics(t, func() { tetris.New(tetris.WithBoardSize(0, 20)) })
	assert.Panics(t, func() { tetris.New(tetris.WithRandomizer(nil)) })
}

func TestSpawnNudgesDownWhenBlocked(t *testing.T) {
	g := tetris.New(dealing(tetris.O))
	press(g, tetris.Input{Left: true}, 5)
	require.Equal(t, 0, g.Active().X)

	g.Board().Set(5, 0, tetris.Cell{Kind: tetris.I, Filled: true})
	g.Update(0, tetris.Input{HardDrop: true})

	assert.Equal(t, tetris.NewActivePiece(tetris.O, 5, 1), g.Active())
	assert.Equal(t, 5, g.Board().Filled(), "a nudged spawn is not a top-out")
	assert.Equal(t, 0, g.Stats().TopOuts())
}

func TestRotation(t *testing.T) {
	t.Run("counter-clockwise wins when both are pressed", func(t *testing.T) {
		g := tetris.New(dealing(tetris.T))
		g.Update(0, tetris.Input{SoftDrop: true})

		g.Update(0, tetris.Input{RotateCW: true, RotateCCW: true})
		assert.Equal(t, tetris.R270, g.Active().Rot)
	})

	t.Run("clockwise", func(t *testing.T) {
		g := tetris.New(dealing(tetris.T))
		g.Update(0, tetris.Input{SoftDrop: true})

		g.Update(0, tetris.Input{RotateCW: true})
		assert.Equal(t, tetris.R90, g.Active().Rot)
	})

	t.Run("blocked rotation is discarded without a kick", func(t *testing.T) {
		g := tetris.New(dealing(tetris.I))
		before := g.Active()

		// I in R90 reaches one row above its pivot, which is off the board at spawn.
		g.Update(0, tetris.Input{RotateCW: true})
		assert.Equal(t, before, g.Active())
	})
}

func TestHorizontalMovement(t *testing.T) {
	g := tetris.New(dealing(tetris.I))

	g.Update(0, tetris.Input{Left: true})
	assert.Equal(t, 4, g.Active().X)

	g.Update(0, tetris.Input{Left: true, Right: true})
	assert.Equal(t, 4, g.Active().X, "left and right in one tick cancel out")

	press(g, tetris.Input{Left: true}, 10)
	assert.Equal(t, 1, g.Active().X, "stops at the wall")

	press(g, tetris.Input{Right: true}, 10)
	assert.Equal(t, 7, g.Active().X)
}

func TestSoftDrop(t *testing.T) {
	g := tetris.New(dealing(tetris.O, tetris.T), tetris.WithBoardSize(10, 4))

	g.Update(0, tetris.Input{SoftDrop: true})
	assert.Equal(t, 1, g.Active().Y)

	g.Update(0, tetris.Input{SoftDrop: true})
	assert.Equal(t, 2, g.Active().Y)
	assert.Equal(t, 0, g.Board().Filled())

	g.Update(0, tetris.Input{SoftDrop: true})
	assert.Equal(t, tetris.T, g.Active().Kind, "a blocked soft drop locks")
	assert.Equal(t, 4, g.Board().Filled())
	assert.Equal(t, 2, g.Stats().SoftDrops())
}

func TestHardDropLandsOnGhost(t *testing.T) {
	g := tetris.New(tetris.WithSeed(2024))

	for i := 0; i < 5; i++ {
		ghost := g.Ghost()
		g.Update(0, tetris.Input{HardDrop: true})

		for _, c := range ghost.Cells() {
			if !assert.True(t, g.Board().Get(c.X, c.Y).Filled, "drop %d cell %v", i, c) {
				return
			}
		}
	}
	assert.Equal(t, 5, g.Stats().Locked())
	assert.Equal(t, 5, g.Stats().HardDrops())
}

func TestGhostIsPureAndFollowsTheBoard(t *testing.T) {
	g := tetris.New(dealing(tetris.O))
	before := g.Active()

	ghost := g.Ghost()
	assert.Equal(t, before, g.Active())
	assert.Equal(t, 18, ghost.Y)
	assert.Equal(t, before.X, ghost.X)

	g.Board().Set(5, 10, tetris.Cell{Kind: tetris.L, Filled: true})
	assert.Equal(t, 8, g.Ghost().Y, "recomputed against the current board")
}

func TestGravity(t *testing.T) {
	t.Run("accumulates partial ticks", func(t *testing.T) {
		g := tetris.New(dealing(tetris.I), tetris.WithGravity(0.5))

		g.Update(0.25, tetris.Input{})
		assert.Equal(t, 0, g.Active().Y)

		g.Update(0.25, tetris.Input{})
		assert.Equal(t, 1, g.Active().Y)
	})

	t.Run("large steps fall several rows", func(t *testing.T) {
		g := tetris.New(dealing(tetris.I), tetris.WithGravity(0.25))

		g.Update(1.0, tetris.Input{})
		assert.Equal(t, 4, g.Active().Y)
	})

	t.Run("landing locks and drops the remainder", func(t *testing.T) {
		g := tetris.New(dealing(tetris.I, tetris.O), tetris.WithGravity(0.25))

		g.Update(100, tetris.Input{})
		assert.Equal(t, tetris.O, g.Active().Kind)
		assert.Equal(t, 0, g.Active().Y, "the accumulator resets on lock")
		assert.Equal(t, 4, g.Board().Filled())
	})
}

func TestPause(t *testing.T) {
	g := tetris.New(dealing(tetris.T), tetris.WithGravity(0.25))

	g.Update(0, tetris.Input{Pause: true})
	require.True(t, g.Paused())

	before := g.Active()
	g.Update(10, tetris.Input{Left: true, HardDrop: true})
	assert.Equal(t, before, g.Active(), "paused games ignore input and time")
	assert.Equal(t, 0, g.Board().Filled())

	g.Update(0.25, tetris.Input{Pause: true})
	assert.False(t, g.Paused())
	assert.Equal(t, 1, g.Active().Y, "the unpausing tick is processed")
}

func TestRestart(t *testing.T) {
	g := tetris.New(tetris.WithSeed(77), tetris.WithBoardSize(8, 16))
	preview := g.Preview(10)
	first := g.Active()

	press(g, tetris.Input{HardDrop: true}, 3)
	g.SetPulseGravity(true)
	g.Update(0, tetris.Input{Pause: true})

	g.Update(0, tetris.Input{Restart: true, Left: true})

	assert.Equal(t, first, g.Active(), "a seeded session restarts the same sequence")
	assert.Equal(t, preview, g.Preview(10))
	assert.Equal(t, 0, g.Board().Filled())
	assert.Equal(t, 8, g.Board().Width(), "construction options survive")
	assert.False(t, g.Paused())
	assert.False(t, g.PulseGravity(), "host settings are not kept")
	assert.Equal(t, 0, g.Stats().Locked())
}

func TestPulseGravity(t *testing.T) {
	const base = tetris.DefaultGravity
	g := tetris.New(dealing(tetris.I))
	g.SetPulseGravity(true)

	g.Update(0, tetris.Input{})
	assert.InDelta(t, base, g.GravityInterval(), 1e-9)

	g.Update(2, tetris.Input{})
	assert.InDelta(t, 1.5*base, g.GravityInterval(), 1e-9)

	g.Update(2, tetris.Input{})
	assert.InDelta(t, base, g.GravityInterval(), 1e-9)

	g.Update(2, tetris.Input{})
	assert.InDelta(t, 0.5*base, g.GravityInterval(), 1e-9)
	assert.Equal(t, base, g.BaseGravityInterval())

	g.SetPulseGravity(false)
	assert.Equal(t, base, g.GravityInterval(), "disabling snaps back to the base")
}

func TestSingleRowClearWithFourPieces(t *testing.T) {
	g := tetris.New(dealing(tetris.I))

	// Columns 0-3.
	press(g, tetris.Input{Left: true}, 4)
	g.Update(0, tetris.Input{HardDrop: true})

	// Columns 4-7.
	g.Update(0, tetris.Input{HardDrop: true})

	// Upright in column 8, then column 9.
	for _, shift := range []int{2, 3} {
		g.Update(0, tetris.Input{SoftDrop: true})
		g.Update(0, tetris.Input{RotateCW: true})
		require.Equal(t, tetris.R90, g.Active().Rot)
		press(g, tetris.Input{Right: true}, shift)
		g.Update(0, tetris.Input{HardDrop: true})
	}

	assert.Equal(t, uint64(100), g.Score())
	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 0, g.Level())
	assert.Equal(t, 1, g.Stats().Clears(1))
	assert.Equal(t, 4, g.Stats().Locked())

	b := g.Board()
	assert.Equal(t, 6, b.Filled())
	for y := 17; y < 20; y++ {
		assert.True(t, b.Get(8, y).Filled)
		assert.True(t, b.Get(9, y).Filled)
	}
	assert.False(t, b.Get(8, 16).Filled)
	assert.False(t, b.Get(0, 19).Filled)
}

func TestSeededGamesAreReproducible(t *testing.T) {
	play := func() tetris.Snapshot {
		g := tetris.New(tetris.WithSeed(31337))
		script := rand.New(rand.NewPCG(1, 2))
		for range 2000 {
			g.Update(1.0/60.0, tetris.Input{
				Left:      script.IntN(6) == 0,
				Right:     script.IntN(6) == 0,
				SoftDrop:  script.IntN(4) == 0,
				HardDrop:  script.IntN(40) == 0,
				RotateCW:  script.IntN(8) == 0,
				RotateCCW: script.IntN(10) == 0,
			})
		}
		return g.Snapshot(5)
	}

	assert.Equal(t, play(), play())
}

func TestSnapshotIsDetached(t *testing.T) {
	g := tetris.New(dealing(tetris.O, tetris.L))
	snap := g.Snapshot(2)

	assert.Equal(t, []tetris.Tetromino{tetris.L, tetris.O}, snap.Preview)
	assert.Equal(t, g.Active(), snap.Active)
	assert.Equal(t, g.Ghost(), snap.Ghost)
	assert.Equal(t, 1, snap.Stats.Spawned[tetris.O])

	g.Update(0, tetris.Input{HardDrop: true})

	assert.Equal(t, 4, g.Board().Filled())
	for _, c := range snap.Cells {
		assert.False(t, c.Filled)
	}
	assert.Equal(t, tetris.O, snap.Active.Kind)
	assert.Equal(t, tetris.Cell{}, snap.Cell(-1, 0))
}

func TestStatsCountSpawnsPerKind(t *testing.T) {
	g := tetris.New(tetris.WithSeed(8))
	press(g, tetris.Input{HardDrop: true}, 13)

	// 14 spawns: exactly two full bags.
	s := g.Stats()
	assert.Equal(t, 14, s.TotalSpawned())
	for _, kind := range tetris.Tetrominoes {
		assert.Equal(t, 2, s.Spawned(kind), kind.String())
	}
	assert.Equal(t, 0, s.Clears(0))
	assert.Equal(t, 0, s.Clears(5))
}
