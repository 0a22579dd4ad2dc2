package play

import (
	"github.com/plus3/searchtris/frame"
	"github.com/plus3/searchtris/render"
	"github.com/plus3/searchtris/tetris"
)

// InputSystem applies queued player actions, one mutation per action.
type InputSystem struct {
	Session *tetris.Session
	Queue   *InputQueue

	Applied  int
	Rejected int
}

func (s *InputSystem) Execute(f *frame.UpdateFrame) {
	for _, a := range s.Queue.Drain() {
		if s.Session.Apply(a) {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
}

// GravitySystem feeds frame timestamps to the session's drop timer and halts
// the loop once the session is over, whichever system ended it.
type GravitySystem struct {
	Session *tetris.Session
	// OnGameOver runs after the final frame has been processed.
	OnGameOver func()

	over bool
}

// NewGravitySystem creates the system and subscribes it to the session's
// game over hook.
func NewGravitySystem(session *tetris.Session, onGameOver func()) *GravitySystem {
	s := &GravitySystem{Session: session, OnGameOver: onGameOver}
	session.OnGameOver(func() { s.over = true })
	return s
}

func (s *GravitySystem) Execute(f *frame.UpdateFrame) {
	s.Session.Frame(f.Timestamp)
	if !s.over {
		return
	}
	if s.OnGameOver != nil {
		f.Commands.Defer(s.OnGameOver)
	}
	f.Halt()
}

// StatusSystem keeps the host's text lines in sync with the session.
type StatusSystem struct {
	Session *tetris.Session

	Hold   string
	Status string
}

func (s *StatusSystem) Execute(f *frame.UpdateFrame) {
	s.Hold = render.HoldText(s.Session)
	s.Status = render.StatusText(s.Session)
}
