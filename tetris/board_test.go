package tetris_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/searchtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *tetris.Board, row int, v uint8) {
	for c := 0; c < b.Cols(); c++ {
		b.Set(row, c, v)
	}
}

func TestCollides(t *testing.T) {
	board := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols)
	board.Set(10, 5, 3)

	tests := []struct {
		name  string
		piece tetris.Piece
		dRow  int
		dCol  int
		want  bool
	}{
		{"open space", tetris.Piece{Type: tetris.PieceO, Row: 0, Col: 4}, 0, 0, false},
		{"left wall", tetris.Piece{Type: tetris.PieceO, Row: 0, Col: 0}, 0, -1, true},
		{"right wall", tetris.Piece{Type: tetris.PieceO, Row: 0, Col: 8}, 0, 1, true},
		{"flush right", tetris.Piece{Type: tetris.PieceO, Row: 0, Col: 8}, 0, 0, false},
		{"floor", tetris.Piece{Type: tetris.PieceO, Row: 18}, 1, 0, true},
		{"resting on floor", tetris.Piece{Type: tetris.PieceO, Row: 18}, 0, 0, false},
		{"ceiling", tetris.Piece{Type: tetris.PieceI, Row: 0, Col: 3}, -1, 0, true},
		{"settled cell", tetris.Piece{Type: tetris.PieceO, Row: 8, Col: 4}, 1, 0, true},
		{"beside settled cell", tetris.Piece{Type: tetris.PieceO, Row: 9, Col: 6}, 0, 0, false},
		{"empty shape cell over settled", tetris.Piece{Type: tetris.PieceT, Row: 10, Col: 5}, 0, 0, false},
		{"filled shape cell over settled", tetris.Piece{Type: tetris.PieceT, Row: 9, Col: 4}, 0, 0, true},
		{"vertical I past floor", tetris.Piece{Type: tetris.PieceI, Rotation: 1, Row: 17}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.Collides(tt.piece, tt.dRow, tt.dCol))
		})
	}
}

// reference predicate: any filled cell out of bounds or on a settled cell
func collidesRef(b *tetris.Board, p tetris.Piece) bool {
	hit := false
	p.Shape().Cells(func(r, c int) {
		row, col := p.Row+r, p.Col+c
		if row < 0 || row >= b.Rows() || col < 0 || col >= b.Cols() || b.At(row, col) != 0 {
			hit = true
		}
	})
	return hit
}

func TestCollidesMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := range 200 {
		board := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols)
		for range rng.IntN(60) {
			board.Set(rng.IntN(board.Rows()), rng.IntN(board.Cols()), uint8(rng.IntN(7)+1))
		}
		piece := tetris.Piece{
			Type:     tetris.PieceType(rng.IntN(tetris.PieceCount)),
			Rotation: rng.IntN(4),
			Row:      rng.IntN(24) - 2,
			Col:      rng.IntN(14) - 2,
		}
		require.Equal(t, collidesRef(board, piece), board.Collides(piece, 0, 0), "case %d: %+v", i, piece)
	}
}

func TestMerge(t *testing.T) {
	board := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols)
	board.Merge(tetris.Piece{Type: tetris.PieceT, Row: 18, Col: 0})

	assert.Equal(t, []uint8{0, 3, 0, 0, 0, 0, 0, 0, 0, 0}, board.Row(18))
	assert.Equal(t, []uint8{3, 3, 3, 0, 0, 0, 0, 0, 0, 0}, board.Row(19))
}

func TestClearLines(t *testing.T) {
	t.Run("two full rows under a partial row", func(t *testing.T) {
		board := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols)
		fillRow(board, 19, 1)
		fillRow(board, 18, 2)
		partial := []uint8{4, 0, 4, 0, 0, 5, 0, 0, 0, 6}
		for c, v := range partial {
			board.Set(17, c, v)
		}

		assert.Equal(t, 2, board.ClearLines())
		assert.Equal(t, partial, board.Row(19))
		for r := 0; r < 19; r++ {
			assert.Equal(t, make([]uint8, 10), board.Row(r), "row %d", r)
		}
	})

	t.Run("non adjacent full rows", func(t *testing.T) {
		board := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols)
		fillRow(board, 19, 1)
		board.Set(18, 0, 7)
		fillRow(board, 17, 2)
		board.Set(16, 9, 3)

		assert.Equal(t, 2, board.ClearLines())
		assert.Equal(t, uint8(7), board.At(19, 0))
		assert.Equal(t, uint8(3), board.At(18, 9))
		assert.Equal(t, 2, countFilled(board))
	})

	t.Run("four full rows", func(t *testing.T) {
		board := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols)
		for r := 16; r < 20; r++ {
			fillRow(board, r, uint8(r-15))
		}
		assert.Equal(t, 4, board.ClearLines())
		assert.True(t, board.Empty())
	})

	t.Run("every row full", func(t *testing.T) {
		board := tetris.NewBoard(4, 3)
		for r := range 4 {
			fillRow(board, r, 1)
		}
		assert.Equal(t, 4, board.ClearLines())
		assert.True(t, board.Empty())
	})

	t.Run("nothing to clear", func(t *testing.T) {
		board := tetris.NewBoard(tetris.DefaultRows, tetris.DefaultCols)
		board.Set(19, 3, 1)
		assert.Equal(t, 0, board.ClearLines())
		assert.Equal(t, uint8(1), board.At(19, 3))
	})
}

func countFilled(b *tetris.Board) int {
	n := 0
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.At(r, c) != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {20, 0}, {-1, -1}} {
		t.Run(fmt.Sprintf("%dx%d", dims[0], dims[1]), func(t *testing.T) {
			assert.Panics(t, func() { tetris.NewBoard(dims[0], dims[1]) })
		})
	}
}
