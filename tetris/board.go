package tetris

const (
	DefaultRows = 20
	DefaultCols = 10
)

// Board is the settled-cell grid. A cell holds 0 when empty or the settled
// piece's type + 1.
type Board struct {
	rows  int
	cols  int
	cells [][]uint8
}

// NewBoard creates an empty rows × cols board. It panics on non-positive
// dimensions.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic("tetris: board dimensions must be positive")
	}
	b := &Board{rows: rows, cols: cols, cells: make([][]uint8, rows)}
	for r := range b.cells {
		b.cells[r] = make([]uint8, cols)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// At returns the value stored at (row, col).
func (b *Board) At(row, col int) uint8 {
	return b.cells[row][col]
}

// Set stores v at (row, col). Intended for seeding boards in tests and tools.
func (b *Board) Set(row, col int, v uint8) {
	b.cells[row][col] = v
}

// Row returns a copy of the given row.
func (b *Board) Row(row int) []uint8 {
	out := make([]uint8, b.cols)
	copy(out, b.cells[row])
	return out
}

// CollidesShape reports whether s placed with its top-left at (row, col)
// would leave the board or overlap a settled cell.
func (b *Board) CollidesShape(s Shape, row, col int) bool {
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if !s.Filled(r, c) {
				continue
			}
			nr, nc := row+r, col+c
			if nr < 0 || nr >= b.rows || nc < 0 || nc >= b.cols {
				return true
			}
			if b.cells[nr][nc] != 0 {
				return true
			}
		}
	}
	return false
}

// Collides reports whether p offset by (dRow, dCol) would collide.
func (b *Board) Collides(p Piece, dRow, dCol int) bool {
	return b.CollidesShape(p.Shape(), p.Row+dRow, p.Col+dCol)
}

// Merge writes the piece into the board. Cells outside the board are skipped;
// callers only merge pieces that passed a collision check.
func (b *Board) Merge(p Piece) {
	v := uint8(p.Type) + 1
	p.Shape().Cells(func(r, c int) {
		nr, nc := p.Row+r, p.Col+c
		if nr >= 0 && nr < b.rows && nc >= 0 && nc < b.cols {
			b.cells[nr][nc] = v
		}
	})
}

// ClearLines removes every full row, shifting the rows above it down and
// zero-filling the top. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for r := b.rows - 1; r >= 0; r-- {
		if !b.full(r) {
			continue
		}
		for y := r; y > 0; y-- {
			copy(b.cells[y], b.cells[y-1])
		}
		clear(b.cells[0])
		cleared++
		// a new row slid into r; examine it again
		r++
	}
	return cleared
}

func (b *Board) full(row int) bool {
	for _, v := range b.cells[row] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Empty reports whether no cell is settled.
func (b *Board) Empty() bool {
	for _, row := range b.cells {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}
