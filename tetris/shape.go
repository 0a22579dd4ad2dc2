package tetris

// Shape is an immutable bitmap of filled cells. Row-major, Rows × Cols.
type Shape struct {
	Rows  int
	Cols  int
	cells []bool
}

// NewShape builds a shape from a 0/1 matrix. All rows must have the same length.
func NewShape(matrix [][]int) Shape {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		panic("tetris: empty shape")
	}
	s := Shape{
		Rows:  len(matrix),
		Cols:  len(matrix[0]),
		cells: make([]bool, len(matrix)*len(matrix[0])),
	}
	for r, row := range matrix {
		if len(row) != s.Cols {
			panic("tetris: ragged shape")
		}
		for c, v := range row {
			s.cells[r*s.Cols+c] = v != 0
		}
	}
	return s
}

// Filled reports whether the cell at (r, c) is part of the shape.
func (s Shape) Filled(r, c int) bool {
	return s.cells[r*s.Cols+c]
}

// Cells calls fn for every filled cell offset.
func (s Shape) Cells(fn func(r, c int)) {
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if s.cells[r*s.Cols+c] {
				fn(r, c)
			}
		}
	}
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.Rows != o.Rows || s.Cols != o.Cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rotate returns the shape turned 90° clockwise: res[c][rows-1-r] = s[r][c].
// The receiver is never modified.
func Rotate(s Shape) Shape {
	res := Shape{
		Rows:  s.Cols,
		Cols:  s.Rows,
		cells: make([]bool, len(s.cells)),
	}
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			res.cells[c*res.Cols+(s.Rows-1-r)] = s.cells[r*s.Cols+c]
		}
	}
	return res
}

func (s Shape) String() string {
	buf := make([]byte, 0, s.Rows*(s.Cols+1))
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if s.Filled(r, c) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
