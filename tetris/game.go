package tetris

import "math"

// pulsePeriod is the length in seconds of one pulse-gravity oscillation.
const pulsePeriod = 8.0

var lineScores = [...]uint64{0, 100, 300, 500, 800}

// Game is one play session. It owns the board, the randomizer and the falling piece, and advances
// only through Update and the setting methods. It is not safe for concurrent use.
type Game struct {
	cfg config

	paused bool
	score  uint64
	level  int
	lines  int

	active ActivePiece
	bag    Randomizer
	board  *Board
	stats  *Stats

	gravity     float64
	baseGravity float64
	acc         float64
	pulseTime   float64
	pulse       bool
}

// New starts a session with a freshly spawned piece.
func New(opts ...Option) *Game {
	return newGame(newConfig(opts))
}

func newGame(cfg config) *Game {
	g := &Game{
		cfg:         cfg,
		bag:         cfg.randomizer(),
		board:       NewBoard(cfg.width, cfg.height),
		stats:       newStats(),
		gravity:     cfg.gravity,
		baseGravity: cfg.gravity,
	}
	g.active = g.spawn()
	return g
}

// Update advances the session by dt seconds using one input snapshot.
func (g *Game) Update(dt float64, in Input) {
	if in.Restart {
		*g = *newGame(g.cfg)
		return
	}
	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	if in.RotateCCW {
		g.tryRotate(g.active.Rot.CCW())
	} else if in.RotateCW {
		g.tryRotate(g.active.Rot.CW())
	}

	if in.Left {
		g.tryMove(-1, 0)
	}
	if in.Right {
		g.tryMove(1, 0)
	}

	if in.HardDrop {
		g.stats.hardDrops++
		for g.tryMove(0, 1) {
		}
		g.lockAndSpawn()
		return
	}

	if in.SoftDrop {
		if !g.tryMove(0, 1) {
			g.lockAndSpawn()
			return
		}
		g.stats.softDrops++
	}

	g.pulseTime += dt
	if g.pulse {
		g.gravity = g.baseGravity * pulseFactor(g.pulseTime)
	} else {
		g.gravity = g.baseGravity
	}

	g.acc += dt
	for g.acc >= g.gravity {
		g.acc -= g.gravity
		if !g.tryMove(0, 1) {
			g.lockAndSpawn()
			break
		}
	}
}

// pulseFactor scales the base interval between 0.5 and 1.5 over one pulse period.
func pulseFactor(t float64) float64 {
	return 1 + 0.5*math.Sin(2*math.Pi*t/pulsePeriod)
}

// SetPulseGravity turns the oscillating fall speed on or off. Turning it off snaps the interval
// back to the level's base.
func (g *Game) SetPulseGravity(enabled bool) {
	g.pulse = enabled
	if !enabled {
		g.gravity = g.baseGravity
	}
}

func (g *Game) spawn() ActivePiece {
	t := g.bag.Next()
	g.stats.recordSpawn(t)

	p := NewActivePiece(t, g.board.Width()/2, 0)
	for range 3 {
		if !g.board.Collides(p) {
			break
		}
		p.Y++
	}
	return p
}

func (g *Game) tryMove(dx, dy int) bool {
	next := g.active.Moved(dx, dy)
	if g.board.Collides(next) {
		return false
	}
	g.active = next
	return true
}

func (g *Game) tryRotate(r Rotation) bool {
	next := g.active.Rotated(r)
	if g.board.Collides(next) {
		return false
	}
	g.active = next
	return true
}

func (g *Game) lockAndSpawn() {
	g.board.LockPiece(g.active)
	g.stats.locked++

	if cleared := g.board.ClearFullLines(); cleared > 0 {
		g.stats.recordClear(cleared)
		g.lines += cleared
		g.score += lineScores[min(cleared, len(lineScores)-1)] * uint64(g.level+1)
		if g.lines/10 > g.level {
			g.level++
			g.baseGravity = math.Max(g.baseGravity*0.9, MinGravity)
			if !g.pulse {
				g.gravity = g.baseGravity
			}
		}
	}

	g.active = g.spawn()
	g.acc = 0

	if g.board.Collides(g.active) {
		g.board.Clear()
		g.score = 0
		g.level = 0
		g.lines = 0
		g.stats.topOuts++
	}
}

// Active returns the falling piece.
func (g *Game) Active() ActivePiece { return g.active }

// Board returns the locked cells. Callers must treat it as read-only.
func (g *Game) Board() *Board { return g.board }

// Ghost returns where the active piece would come to rest if dropped now.
func (g *Game) Ghost() ActivePiece {
	ghost := g.active
	for !g.board.Collides(ghost.Moved(0, 1)) {
		ghost.Y++
	}
	return ghost
}

// Preview returns the next n pieces without drawing them.
func (g *Game) Preview(n int) []Tetromino { return g.bag.Peek(n) }

func (g *Game) Score() uint64 { return g.score }
func (g *Game) Level() int    { return g.level }
func (g *Game) Lines() int    { return g.lines }
func (g *Game) Paused() bool  { return g.paused }

// GravityInterval is the current seconds-per-row, including any pulse modulation.
func (g *Game) GravityInterval() float64 { return g.gravity }

// BaseGravityInterval is the level-derived seconds-per-row.
func (g *Game) BaseGravityInterval() float64 { return g.baseGravity }

func (g *Game) PulseGravity() bool { return g.pulse }

// Stats returns the live session counters.
func (g *Game) Stats() *Stats { return g.stats }
