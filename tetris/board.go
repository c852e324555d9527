package tetris

import "fmt"

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is one board square. The zero value is empty.
type Cell struct {
	Kind   Tetromino
	Filled bool
}

// Board is a fixed-size grid of locked cells stored row-major at y*width + x.
// It never holds the falling piece.
type Board struct {
	w, h  int
	cells []Cell
}

// NewBoard creates an empty w×h board. It panics if either dimension is not positive.
func NewBoard(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", w, h))
	}
	return &Board{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

func (b *Board) Width() int  { return b.w }
func (b *Board) Height() int { return b.h }

func (b *Board) idx(x, y int) int {
	return y*b.w + x
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// Get returns the cell at (x, y), or an empty cell when out of bounds.
func (b *Board) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[b.idx(x, y)]
}

// Set overwrites the cell at (x, y). Out of bounds writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if b.InBounds(x, y) {
		b.cells[b.idx(x, y)] = c
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	clear(b.cells)
}

// Collides reports whether any cell of p is out of bounds or already filled.
func (b *Board) Collides(p ActivePiece) bool {
	for _, c := range p.Cells() {
		if !b.InBounds(c.X, c.Y) || b.cells[b.idx(c.X, c.Y)].Filled {
			return true
		}
	}
	return false
}

// LockPiece writes the cells of p into the grid tagged with its kind. Placement is not checked.
func (b *Board) LockPiece(p ActivePiece) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, Cell{Kind: p.Kind, Filled: true})
	}
}

// RowFull reports whether every column of row y is filled. Rows off the board are never full.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.h {
		return false
	}
	for _, c := range b.cells[b.idx(0, y):b.idx(0, y+1)] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row, compacts the rows above downward and empties the rows
// exposed at the top. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	write := b.h - 1
	cleared := 0

	for read := b.h - 1; read >= 0; read-- {
		if b.RowFull(read) {
			cleared++
			continue
		}
		if write != read {
			copy(b.cells[b.idx(0, write):b.idx(0, write+1)], b.cells[b.idx(0, read):b.idx(0, read+1)])
		}
		write--
	}

	if write >= 0 {
		clear(b.cells[:b.idx(0, write+1)])
	}
	return cleared
}

// Filled counts the filled cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled {
			n++
		}
	}
	return n
}
