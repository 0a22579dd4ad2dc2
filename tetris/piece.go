package tetris

// Piece is the falling tetromino. Row and Col locate the top-left corner of
// its shape on the board.
type Piece struct {
	Type     PieceType
	Rotation int
	Row      int
	Col      int
}

// Shape returns the piece's current oriented shape.
func (p Piece) Shape() Shape {
	return ShapeFor(p.Type, p.Rotation)
}

// Rotated returns a copy of the piece turned one step clockwise.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) & 3
	return p
}

// Moved returns a copy of the piece offset by the given rows and columns.
func (p Piece) Moved(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}
