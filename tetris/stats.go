package tetris

import "github.com/kamstrup/intmap"

// Stats counts session activity. Unlike score, level and lines, the counters survive a top-out and
// are only reset by a restart.
type Stats struct {
	spawned   *intmap.Map[Tetromino, int]
	locked    int
	clears    [4]int
	topOuts   int
	hardDrops int
	softDrops int
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[Tetromino, int](len(Tetrominoes)),
	}
}

func (s *Stats) recordSpawn(t Tetromino) {
	n, _ := s.spawned.Get(t)
	s.spawned.Put(t, n+1)
}

func (s *Stats) recordClear(lines int) {
	if lines <= 0 {
		return
	}
	s.clears[min(lines, len(s.clears))-1]++
}

// Spawned returns how many pieces of kind t have entered play.
func (s *Stats) Spawned(t Tetromino) int {
	n, _ := s.spawned.Get(t)
	return n
}

// TotalSpawned sums Spawned over every kind.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, t := range Tetrominoes {
		total += s.Spawned(t)
	}
	return total
}

// Locked is the number of pieces written into the board.
func (s *Stats) Locked() int { return s.locked }

// Clears returns how many locks cleared exactly n lines, for n in 1..4 (4 also counts larger
// clears on custom boards).
func (s *Stats) Clears(n int) int {
	if n < 1 || n > len(s.clears) {
		return 0
	}
	return s.clears[n-1]
}

func (s *Stats) TopOuts() int   { return s.topOuts }
func (s *Stats) HardDrops() int { return s.hardDrops }
func (s *Stats) SoftDrops() int { return s.softDrops }

// StatsSnapshot is a plain copy of Stats.
type StatsSnapshot struct {
	Spawned   [7]int
	Locked    int
	Clears    [4]int
	TopOuts   int
	HardDrops int
	SoftDrops int
}

func (s *Stats) snapshot() StatsSnapshot {
	out := StatsSnapshot{
		Locked:    s.locked,
		Clears:    s.clears,
		TopOuts:   s.topOuts,
		HardDrops: s.hardDrops,
		SoftDrops: s.softDrops,
	}
	for i, t := range Tetrominoes {
		out.Spawned[i] = s.Spawned(t)
	}
	return out
}
