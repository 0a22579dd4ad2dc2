// Package play connects a tetris session to a host: the search box trigger,
// queued key input and the frame loop.
package play

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/searchtris/frame"
	"github.com/plus3/searchtris/render"
	"github.com/plus3/searchtris/tetris"
)

// GameOverMessage is shown to the player when the session ends.
const GameOverMessage = "ゲームオーバー"

// Config assembles a Game.
type Config struct {
	Session tetris.Options
	// OnGameOver is called once, after the frame that ended the session.
	OnGameOver func()
	// Before systems run ahead of input handling each frame; After systems
	// run once the session and status lines are up to date.
	Before []frame.System
	After  []frame.System
	Logger *log.Logger
}

// Game is one running session and the loop that drives it.
type Game struct {
	// ID tells sessions apart in logs and reports.
	ID        uuid.UUID
	Session   *tetris.Session
	Scheduler *frame.Scheduler
	Input     *InputQueue
	Status    *StatusSystem

	inputSystem *InputSystem
	logger      *log.Logger
}

// NewGame creates a session, deals its first piece and registers the frame
// systems.
func NewGame(cfg Config) *Game {
	opts := cfg.Session
	if opts.Logger == nil {
		opts.Logger = cfg.Logger
	}
	session := tetris.NewSession(opts)

	g := &Game{
		ID:        uuid.New(),
		Session:   session,
		Scheduler: frame.NewScheduler(),
		Input:     &InputQueue{},
		Status:    &StatusSystem{Session: session},
		logger:    cfg.Logger,
	}
	g.inputSystem = &InputSystem{Session: session, Queue: g.Input}

	for _, s := range cfg.Before {
		g.Scheduler.Register(s)
	}
	g.Scheduler.Register(g.inputSystem)
	g.Scheduler.Register(NewGravitySystem(session, cfg.OnGameOver))
	g.Scheduler.Register(g.Status)
	for _, s := range cfg.After {
		g.Scheduler.Register(s)
	}

	session.Start()
	if g.logger != nil {
		g.logger.Printf("game %s created", g.ID)
	}
	g.Status.Hold = render.HoldText(session)
	g.Status.Status = render.StatusText(session)
	return g
}

// Press queues the action bound to a key. Unbound keys and keys pressed
// after game over are dropped.
func (g *Game) Press(key string) bool {
	a, ok := ActionForKey(key)
	if !ok || g.Over() {
		return false
	}
	g.Input.Push(a)
	return true
}

// Frame runs one loop iteration at timestamp now and reports whether
// another frame should be scheduled.
func (g *Game) Frame(now time.Duration) bool {
	return g.Scheduler.Once(now)
}

// Run drives frames at the given interval until the game ends or ctx is done.
func (g *Game) Run(ctx context.Context, interval time.Duration) {
	g.Scheduler.Run(ctx, interval)
	if g.logger != nil {
		g.logger.Printf("game %s: loop stopped after %d frames", g.ID, g.Scheduler.GetStats().Frames)
	}
}

// Over reports whether the loop has stopped for good.
func (g *Game) Over() bool {
	return g.Scheduler.Halted() || g.Session.State() == tetris.StateGameOver
}

// InputCounts returns how many queued actions were applied and rejected.
func (g *Game) InputCounts() (applied, rejected int) {
	return g.inputSystem.Applied, g.inputSystem.Rejected
}
