package tetris

// Tetromino identifies one of the seven four-cell shapes. Its value indexes the shape table.
type Tetromino uint8

const (
	I Tetromino = iota
	O
	T
	S
	Z
	J
	L
)

// Tetrominoes lists every kind in table order.
var Tetrominoes = [7]Tetromino{I, O, T, S, Z, J, L}

func (t Tetromino) String() string {
	switch t {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Rotation is one of four quarter-turn states.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

// CW returns the next rotation clockwise.
func (r Rotation) CW() Rotation {
	return (r + 1) & 3
}

// CCW returns the next rotation counter-clockwise.
func (r Rotation) CCW() Rotation {
	return (r + 3) & 3
}

func (r Rotation) String() string {
	switch r & 3 {
	case R90:
		return "90"
	case R180:
		return "180"
	case R270:
		return "270"
	default:
		return "0"
	}
}

// Offset is a cell position relative to a piece pivot, or an absolute board cell.
// X grows rightward and Y grows downward.
type Offset struct {
	X, Y int
}

// shapes holds the authored cell offsets per kind and rotation. The O square is the same in every
// rotation and sits right/below its pivot.
var shapes = [7][4][4]Offset{
	I: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{1, -1}, {1, 0}, {1, 1}, {1, 2}},
		{{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	T: {
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		{{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
	},
	S: {
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		{{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
	Z: {
		{{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		{{1, -1}, {1, 0}, {0, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
	J: {
		{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {1, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		{{0, -1}, {0, 0}, {-1, 1}, {0, 1}},
	},
	L: {
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
}

// Blocks returns the four cell offsets of kind t in rotation r.
func Blocks(t Tetromino, r Rotation) [4]Offset {
	return shapes[int(t)%len(shapes)][r&3]
}

// ActivePiece is a falling piece: a kind and rotation placed with its pivot at (X, Y).
type ActivePiece struct {
	Kind Tetromino
	Rot  Rotation
	X, Y int
}

// NewActivePiece places kind t at (x, y) in rotation R0.
func NewActivePiece(t Tetromino, x, y int) ActivePiece {
	return ActivePiece{Kind: t, Rot: R0, X: x, Y: y}
}

// Cells returns the absolute board cells the piece occupies.
func (p ActivePiece) Cells() [4]Offset {
	cells := Blocks(p.Kind, p.Rot)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Moved returns a copy translated by (dx, dy).
func (p ActivePiece) Moved(dx, dy int) ActivePiece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy in rotation r at the same pivot.
func (p ActivePiece) Rotated(r Rotation) ActivePiece {
	p.Rot = r
	return p
}
