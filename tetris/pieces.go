package tetris

// PieceType indexes the seven tetrominoes. The order fixes both the palette
// and the value written into the board (type + 1).
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceJ
	PieceL
	PieceS
	PieceZ
)

// PieceCount is the number of distinct tetrominoes.
const PieceCount = 7

var pieceNames = [PieceCount]string{"I", "O", "T", "J", "L", "S", "Z"}

// Palette holds the display color of each piece type as a CSS hex string.
var Palette = [PieceCount]string{
	"#00f0f0", "#f0f000", "#a000f0",
	"#0000f0", "#f0a000", "#00f000", "#f00000",
}

var templates = [PieceCount]Shape{
	NewShape([][]int{{1, 1, 1, 1}}),
	NewShape([][]int{{1, 1}, {1, 1}}),
	NewShape([][]int{{0, 1, 0}, {1, 1, 1}}),
	NewShape([][]int{{1, 0, 0}, {1, 1, 1}}),
	NewShape([][]int{{0, 0, 1}, {1, 1, 1}}),
	NewShape([][]int{{1, 1, 0}, {0, 1, 1}}),
	NewShape([][]int{{0, 1, 1}, {1, 1, 0}}),
}

// rotations[t][n] is the template of t rotated clockwise n times.
var rotations = func() (table [PieceCount][4]Shape) {
	for t, s := range templates {
		for n := range 4 {
			table[t][n] = s
			s = Rotate(s)
		}
	}
	return table
}()

// Valid reports whether t is one of the seven tetrominoes.
func (t PieceType) Valid() bool {
	return t >= 0 && t < PieceCount
}

func (t PieceType) String() string {
	if !t.Valid() {
		return "?"
	}
	return pieceNames[t]
}

// Color returns the palette entry for the type.
func (t PieceType) Color() string {
	return Palette[t]
}

// Template returns the spawn orientation of the type.
func (t PieceType) Template() Shape {
	return templates[t]
}

// ShapeFor returns the precomputed shape of t at the given rotation tag.
func ShapeFor(t PieceType, rotation int) Shape {
	if !t.Valid() {
		panic("tetris: unknown piece type")
	}
	return rotations[t][rotation&3]
}
