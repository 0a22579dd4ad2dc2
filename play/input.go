package play

import "github.com/plus3/searchtris/tetris"

var keyActions = map[string]tetris.Action{
	"ArrowLeft":  tetris.ActionMoveLeft,
	"ArrowRight": tetris.ActionMoveRight,
	"ArrowDown":  tetris.ActionSoftDrop,
	"ArrowUp":    tetris.ActionRotate,
	"c":          tetris.ActionHold,
	"C":          tetris.ActionHold,
}

// ActionForKey maps a key name (DOM KeyboardEvent.key style, which Ebiten's
// Key.String also uses for these keys) to a game action.
func ActionForKey(key string) (tetris.Action, bool) {
	a, ok := keyActions[key]
	return a, ok
}

// InputQueue buffers actions between frames. It is owned by the goroutine
// driving the scheduler.
type InputQueue struct {
	pending []tetris.Action
}

// Push appends an action to the queue.
func (q *InputQueue) Push(a tetris.Action) {
	q.pending = append(q.pending, a)
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Drain returns the queued actions in arrival order and empties the queue.
func (q *InputQueue) Drain() []tetris.Action {
	out := q.pending
	q.pending = nil
	return out
}
