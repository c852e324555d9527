package tetris

import (
	"context"
	"time"
)

// RunnerStats describes how long ticks took.
type RunnerStats struct {
	Ticks         int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// Runner drives a Game from a host loop. It times each tick and keeps host-owned settings, which
// a restart inside the game would otherwise drop, applied across restarts.
type Runner struct {
	game  *Game
	pulse bool

	ticks         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// NewRunner wraps g. The runner adopts g's current pulse setting.
func NewRunner(g *Game) *Runner {
	return &Runner{
		game:        g,
		pulse:       g.PulseGravity(),
		minDuration: time.Duration(1<<63 - 1),
	}
}

// Game returns the wrapped session.
func (r *Runner) Game() *Game {
	return r.game
}

// SetPulseGravity records the host setting and applies it now and after every restart.
func (r *Runner) SetPulseGravity(enabled bool) {
	r.pulse = enabled
	r.game.SetPulseGravity(enabled)
}

// Once runs one tick of dt seconds.
func (r *Runner) Once(dt float64, in Input) {
	start := time.Now()
	r.game.Update(dt, in)
	if in.Restart && r.pulse {
		r.game.SetPulseGravity(true)
	}
	duration := time.Since(start)

	r.ticks++
	r.lastDuration = duration
	r.totalDuration += duration
	if duration < r.minDuration {
		r.minDuration = duration
	}
	if duration > r.maxDuration {
		r.maxDuration = duration
	}
}

// Run ticks the game every interval until ctx is cancelled. poll supplies each tick's input and
// after, when non-nil, runs on the same goroutine right after the tick.
func (r *Runner) Run(ctx context.Context, interval time.Duration, poll func() Input, after func(*Game)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now

			var in Input
			if poll != nil {
				in = poll()
			}
			r.Once(dt, in)
			if after != nil {
				after(r.game)
			}
		}
	}
}

// Stats returns tick timing collected so far.
func (r *Runner) Stats() RunnerStats {
	stats := RunnerStats{
		Ticks:         r.ticks,
		MaxDuration:   r.maxDuration,
		LastDuration:  r.lastDuration,
		TotalDuration: r.totalDuration,
	}
	if r.ticks > 0 {
		stats.MinDuration = r.minDuration
		stats.AvgDuration = r.totalDuration / time.Duration(r.ticks)
	}
	return stats
}
