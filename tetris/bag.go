package tetris

import (
	"math/rand/v2"
	"slices"
)

// Randomizer deals the sequence of upcoming pieces.
// Peek must not change what Next returns afterwards.
type Randomizer interface {
	Next() Tetromino
	Peek(n int) []Tetromino
}

// Bag is a 7-bag randomizer: each refill holds one of every kind in shuffled order, so every seven
// draws aligned to a refill contain each kind exactly once.
type Bag struct {
	src  rand.PCG
	pool []Tetromino
}

// NewBag returns a bag seeded from system entropy. Its sequence is not reproducible.
func NewBag() *Bag {
	return NewSeededBag(rand.Uint64())
}

// NewSeededBag returns a bag whose sequence is fully determined by seed.
func NewSeededBag(seed uint64) *Bag {
	b := &Bag{
		src:  *rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
		pool: make([]Tetromino, 0, len(Tetrominoes)),
	}
	b.pool = refill(&b.src, b.pool)
	return b
}

// Next removes and returns the next piece, refilling first when the pool is empty.
func (b *Bag) Next() Tetromino {
	var t Tetromino
	t, b.pool = draw(&b.src, b.pool)
	return t
}

// Peek returns the next n pieces without consuming them. It runs the draw sequence against
// copies of the pool and random source.
func (b *Bag) Peek(n int) []Tetromino {
	if n <= 0 {
		return []Tetromino{}
	}

	src := b.src
	pool := slices.Clone(b.pool)
	out := make([]Tetromino, n)
	for i := range out {
		out[i], pool = draw(&src, pool)
	}
	return out
}

// Len reports how many pieces remain before the next refill.
func (b *Bag) Len() int {
	return len(b.pool)
}

func draw(src *rand.PCG, pool []Tetromino) (Tetromino, []Tetromino) {
	if len(pool) == 0 {
		pool = refill(src, pool)
	}
	last := len(pool) - 1
	return pool[last], pool[:last]
}

func refill(src *rand.PCG, pool []Tetromino) []Tetromino {
	pool = append(pool[:0], Tetrominoes[:]...)
	rand.New(src).Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool
}
