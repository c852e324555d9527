package tetris

import "fmt"

// DefaultGravity is the starting fall interval in seconds per row.
const DefaultGravity = 0.8

// MinGravity is the floor the level ramp tightens the interval to.
const MinGravity = 1.0 / 60.0

type config struct {
	width, height int
	gravity       float64
	randomizer    func() Randomizer
}

// Option configures a Game at construction. Options survive a restart.
type Option func(*config)

// WithSeed makes the piece sequence reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.randomizer = func() Randomizer { return NewSeededBag(seed) }
	}
}

// WithRandomizer installs a custom piece source. newRandomizer is called again on every restart.
func WithRandomizer(newRandomizer func() Randomizer) Option {
	return func(c *config) {
		c.randomizer = newRandomizer
	}
}

// WithBoardSize overrides the default 10×20 playfield.
func WithBoardSize(w, h int) Option {
	return func(c *config) {
		c.width, c.height = w, h
	}
}

// WithGravity sets the level 0 fall interval in seconds per row.
func WithGravity(seconds float64) Option {
	return func(c *config) {
		c.gravity = seconds
	}
}

func newConfig(opts []Option) config {
	c := config{
		width:   BoardWidth,
		height:  BoardHeight,
		gravity: DefaultGravity,
		randomizer: func() Randomizer {
			return NewBag()
		},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.gravity <= 0 {
		panic(fmt.Sprintf("tetris: gravity must be positive, got %v", c.gravity))
	}
	if c.randomizer == nil {
		panic("tetris: nil randomizer factory")
	}
	return c
}
