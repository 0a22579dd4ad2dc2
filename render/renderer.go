package render

import (
	"fmt"
	"image/color"

	"github.com/plus3/searchtris/tetris"
)

// DefaultCellSize is the edge of one board cell in pixels.
const DefaultCellSize = 24

// Default theme colors.
const (
	DefaultBackground = "#e0f7fa"
	DefaultGridLine   = "#b0bec5"
	DefaultBorder     = "#455a64"
	DefaultGhost      = "#78909c"
)

// Options controls the look of the playfield.
type Options struct {
	CellSize   int
	Background color.Color
	GridLine   color.Color
	Border     color.Color
	Ghost      color.Color
	// HideGhost disables the landing outline.
	HideGhost bool
}

// DefaultOptions returns the light theme with 24 px cells.
func DefaultOptions() Options {
	return Options{
		CellSize:   DefaultCellSize,
		Background: MustParseHex(DefaultBackground),
		GridLine:   MustParseHex(DefaultGridLine),
		Border:     MustParseHex(DefaultBorder),
		Ghost:      MustParseHex(DefaultGhost),
	}
}

// Renderer draws sessions. It holds no per-session state.
type Renderer struct {
	opts    Options
	palette [tetris.PieceCount]color.RGBA
}

// NewRenderer creates a renderer. A non-positive CellSize falls back to
// DefaultCellSize.
func NewRenderer(opts Options) *Renderer {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultCellSize
	}
	r := &Renderer{opts: opts}
	for i, hex := range tetris.Palette {
		r.palette[i] = MustParseHex(hex)
	}
	return r
}

// Size returns the canvas dimensions needed for a board.
func (r *Renderer) Size(b *tetris.Board) (width, height int) {
	return b.Cols() * r.opts.CellSize, b.Rows() * r.opts.CellSize
}

// PieceColor returns the fill color of a piece type.
func (r *Renderer) PieceColor(t tetris.PieceType) color.RGBA {
	return r.palette[t]
}

// Draw paints the grid, settled cells, ghost outline and falling piece.
func (r *Renderer) Draw(dst Canvas, s *tetris.Session) {
	board := s.Board()
	r.drawGrid(dst, board)

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if v := board.At(row, col); v != 0 {
				r.drawCell(dst, col, row, r.palette[v-1])
			}
		}
	}

	if !r.opts.HideGhost {
		if ghost, ok := s.Ghost(); ok {
			r.drawGhost(dst, ghost)
		}
	}

	if p, ok := s.Current(); ok {
		clr := r.palette[p.Type]
		p.Shape().Cells(func(dr, dc int) {
			r.drawCell(dst, p.Col+dc, p.Row+dr, clr)
		})
	}
}

func (r *Renderer) drawGrid(dst Canvas, b *tetris.Board) {
	cell := float32(r.opts.CellSize)
	w, h := float32(b.Cols())*cell, float32(b.Rows())*cell

	dst.FillRect(0, 0, w, h, r.opts.Background)
	for x := 0; x <= b.Cols(); x++ {
		px := float32(x)*cell + 0.5
		dst.StrokeLine(px, 0, px, h, 1, r.opts.GridLine)
	}
	for y := 0; y <= b.Rows(); y++ {
		py := float32(y)*cell + 0.5
		dst.StrokeLine(0, py, w, py, 1, r.opts.GridLine)
	}
	dst.StrokeRect(0.5, 0.5, w-1, h-1, 2, r.opts.Border)
}

// drawCell fills one board cell, leaving a 1px inset on the right and bottom.
func (r *Renderer) drawCell(dst Canvas, col, row int, clr color.Color) {
	cell := float32(r.opts.CellSize)
	dst.FillRect(float32(col)*cell, float32(row)*cell, cell-1, cell-1, clr)
}

func (r *Renderer) drawGhost(dst Canvas, ghost tetris.Piece) {
	cell := float32(r.opts.CellSize)
	ghost.Shape().Cells(func(dr, dc int) {
		x := float32(ghost.Col+dc) * cell
		y := float32(ghost.Row+dr) * cell
		dst.StrokeRect(x+0.5, y+0.5, cell-1, cell-1, 1.5, r.opts.Ghost)
	})
}

// HoldText describes the hold slot for the status line.
func HoldText(s *tetris.Session) string {
	name := "none"
	if t, ok := s.Held(); ok {
		name = t.String()
	}
	return fmt.Sprintf("Hold: %s (C to hold)", name)
}

// StatusText summarises the session for the status line.
func StatusText(s *tetris.Session) string {
	if s.State() == tetris.StateGameOver {
		return "GAME OVER"
	}
	st := s.Stats()
	return fmt.Sprintf("Lines: %d  Pieces: %d", st.LinesCleared, st.Locked)
}
