package play

import (
	"errors"
	"strings"
)

var (
	// ErrNotTrigger means the query is an ordinary search.
	ErrNotTrigger = errors.New("play: query does not start a game")
	// ErrAlreadyStarted means a game was launched from this page already.
	ErrAlreadyStarted = errors.New("play: game already started")
)

// IsTrigger reports whether a submitted search query launches the game.
func IsTrigger(query string) bool {
	q := strings.TrimSpace(query)
	return q == "テトリス" || strings.EqualFold(q, "tetris")
}

// Trigger guards the search box: the first matching submission launches a
// game, later ones are refused. There is no restart.
type Trigger struct {
	launch  func()
	started bool
}

// NewTrigger creates a trigger that calls launch on the first matching
// submission.
func NewTrigger(launch func()) *Trigger {
	return &Trigger{launch: launch}
}

// Submit handles one search submission.
func (t *Trigger) Submit(query string) error {
	if !IsTrigger(query) {
		return ErrNotTrigger
	}
	if t.started {
		return ErrAlreadyStarted
	}
	t.started = true
	t.launch()
	return nil
}

// Started reports whether the game has been launched.
func (t *Trigger) Started() bool {
	return t.started
}
