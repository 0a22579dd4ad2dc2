package tetris

import (
	"log"
	"math/rand/v2"
	"time"
)

// DefaultDropInterval is the time between automatic drop steps.
const DefaultDropInterval = 500 * time.Millisecond

// State is the lifecycle of a session.
type State int

const (
	// StateIdle is a fresh session before its first spawn.
	StateIdle State = iota
	StateRunning
	// StateGameOver is terminal.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Action is a player input. Each action mutates the session at most once.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionHold
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionSoftDrop:
		return "down"
	case ActionRotate:
		return "rotate"
	case ActionHold:
		return "hold"
	}
	return "unknown"
}

// Options configures a Session. Zero fields fall back to DefaultOptions.
type Options struct {
	Rows         int
	Cols         int
	DropInterval time.Duration
	// Rand drives the bag. Nil uses the global source.
	Rand *rand.Rand
	// Logger receives lifecycle messages. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns a 10 × 20 board dropping every 500 ms.
func DefaultOptions() Options {
	return Options{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		DropInterval: DefaultDropInterval,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Rows <= 0 {
		o.Rows = d.Rows
	}
	if o.Cols <= 0 {
		o.Cols = d.Cols
	}
	if o.DropInterval <= 0 {
		o.DropInterval = d.DropInterval
	}
	return o
}

// Session is one game from first spawn to game over. It is not safe for
// concurrent use; the host drives it from a single goroutine.
type Session struct {
	opts  Options
	board *Board
	bag   *Bag
	stats *Stats

	state   State
	current Piece

	held    PieceType
	hasHeld bool
	canHold bool

	timed       bool
	lastTime    time.Duration
	dropCounter time.Duration

	gameOverHooks []func()
}

// NewSession creates an idle session with an empty board. Call Start or
// drive Frame to deal the first piece.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		opts:  opts,
		board: NewBoard(opts.Rows, opts.Cols),
		bag:   NewBag(opts.Rand),
		stats: newStats(),
	}
}

// Start deals the first piece. It does nothing unless the session is idle.
func (s *Session) Start() {
	if s.state != StateIdle {
		return
	}
	s.logf("session started (%dx%d, drop every %s)", s.opts.Cols, s.opts.Rows, s.opts.DropInterval)
	s.deal()
}

// OnGameOver registers fn to run once when the session ends.
func (s *Session) OnGameOver(fn func()) {
	s.gameOverHooks = append(s.gameOverHooks, fn)
}

func (s *Session) deal() {
	t := s.bag.Next()
	s.stats.recordDeal(t)
	s.Spawn(t)
}

// Spawn places a fresh piece of type t at the top centre and re-arms hold.
// If the piece collides on arrival the session ends.
func (s *Session) Spawn(t PieceType) {
	if s.state == StateGameOver {
		return
	}
	shape := ShapeFor(t, 0)
	s.current = Piece{
		Type: t,
		Row:  0,
		Col:  s.board.Cols()/2 - shape.Cols/2,
	}
	s.canHold = true
	s.state = StateRunning
	s.stats.Spawns++

	if s.board.Collides(s.current, 0, 0) {
		s.endGame()
	}
}

func (s *Session) endGame() {
	s.state = StateGameOver
	s.logf("game over: %s blocked at spawn, %d lines cleared", s.current.Type, s.stats.LinesCleared)
	hooks := s.gameOverHooks
	s.gameOverHooks = nil
	for _, fn := range hooks {
		fn()
	}
}

// Frame advances the drop timer to timestamp now and reports whether the
// caller should schedule another frame. The first call only records the
// timestamp. Once the accumulated time exceeds the drop interval the counter
// resets and exactly one Step runs.
func (s *Session) Frame(now time.Duration) bool {
	if s.state == StateGameOver {
		return false
	}
	if !s.timed {
		s.timed = true
		s.lastTime = now
	}
	delta := now - s.lastTime
	s.lastTime = now
	s.dropCounter += delta

	if s.dropCounter > s.opts.DropInterval {
		s.dropCounter = 0
		if s.state == StateIdle {
			s.deal()
		} else {
			s.Step()
		}
	}
	return s.state != StateGameOver
}

// Step moves the piece down one row, or, when it cannot move, locks it,
// clears full lines and deals the next piece within the same call.
// It reports whether a lock happened.
func (s *Session) Step() bool {
	if s.state != StateRunning {
		return false
	}
	s.stats.Drops++
	if !s.board.Collides(s.current, 1, 0) {
		s.current.Row++
		return false
	}

	s.board.Merge(s.current)
	s.stats.Locked++
	if n := s.board.ClearLines(); n > 0 {
		s.stats.LinesCleared += n
		s.logf("cleared %d line(s)", n)
	}
	s.deal()
	return true
}

// Apply performs one player action and reports whether it changed the
// session. Blocked moves and rotations are silently rejected.
func (s *Session) Apply(a Action) bool {
	if s.state != StateRunning {
		return false
	}
	switch a {
	case ActionMoveLeft:
		return s.try(s.current.Moved(0, -1))
	case ActionMoveRight:
		return s.try(s.current.Moved(0, 1))
	case ActionSoftDrop:
		return s.try(s.current.Moved(1, 0))
	case ActionRotate:
		return s.try(s.current.Rotated())
	case ActionHold:
		return s.Hold()
	}
	return false
}

func (s *Session) try(p Piece) bool {
	if s.board.Collides(p, 0, 0) {
		return false
	}
	s.current = p
	return true
}

// Hold sets the falling piece aside. With an empty slot the next piece comes
// from the bag; otherwise the held type is spawned in its place. Hold is
// available once per spawned piece.
func (s *Session) Hold() bool {
	if s.state != StateRunning || !s.canHold {
		return false
	}
	currentType := s.current.Type
	if !s.hasHeld {
		s.held, s.hasHeld = currentType, true
		s.deal()
	} else {
		swap := s.held
		s.held = currentType
		s.Spawn(swap)
	}
	s.canHold = false
	s.stats.Holds++
	return true
}

// Ghost returns the active piece dropped as far as it can fall. The session
// itself is not changed.
func (s *Session) Ghost() (Piece, bool) {
	if s.state == StateIdle {
		return Piece{}, false
	}
	ghost := s.current
	for !s.board.Collides(ghost, 1, 0) {
		ghost.Row++
	}
	return ghost, true
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Board returns the settled-cell grid. Mutating it affects the session.
func (s *Session) Board() *Board { return s.board }

// Stats returns the live counters of the session.
func (s *Session) Stats() *Stats { return s.stats }

// DropInterval returns the time between automatic drops.
func (s *Session) DropInterval() time.Duration { return s.opts.DropInterval }

// Current returns the active piece. It is false before the first spawn.
func (s *Session) Current() (Piece, bool) {
	return s.current, s.state != StateIdle
}

// Held returns the type in the hold slot, if any.
func (s *Session) Held() (PieceType, bool) {
	return s.held, s.hasHeld
}

// CanHold reports whether Hold would be accepted now.
func (s *Session) CanHold() bool { return s.canHold && s.state == StateRunning }

// Upcoming lists the rest of the current bag run.
func (s *Session) Upcoming() []PieceType {
	return s.bag.Upcoming()
}

func (s *Session) logf(format string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Printf(format, args...)
	}
}
