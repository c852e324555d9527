package tetris

// Snapshot is a value copy of everything a renderer draws. It shares no memory with the Game, so
// it can be handed to another goroutine.
type Snapshot struct {
	Width, Height int
	Cells         []Cell
	Active        ActivePiece
	Ghost         ActivePiece
	Preview       []Tetromino

	Score  uint64
	Level  int
	Lines  int
	Paused bool

	Gravity     float64
	BaseGravity float64
	Pulse       bool

	Stats StatsSnapshot
}

// Cell returns the snapshot cell at (x, y), or an empty cell when out of bounds.
func (s *Snapshot) Cell(x, y int) Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{}
	}
	return s.Cells[y*s.Width+x]
}

// Snapshot copies the current state along with the next previewCount pieces.
func (g *Game) Snapshot(previewCount int) Snapshot {
	cells := make([]Cell, len(g.board.cells))
	copy(cells, g.board.cells)

	return Snapshot{
		Width:       g.board.w,
		Height:      g.board.h,
		Cells:       cells,
		Active:      g.active,
		Ghost:       g.Ghost(),
		Preview:     g.Preview(previewCount),
		Score:       g.score,
		Level:       g.level,
		Lines:       g.lines,
		Paused:      g.paused,
		Gravity:     g.gravity,
		BaseGravity: g.baseGravity,
		Pulse:       g.pulse,
		Stats:       g.stats.snapshot(),
	}
}
