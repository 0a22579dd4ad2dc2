package play_test

import (
	"bytes"
	"context"
	"log"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/searchtris/frame"
	"github.com/plus3/searchtris/play"
	"github.com/plus3/searchtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTrigger(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"テトリス", true},
		{"  テトリス  ", true},
		{"tetris", true},
		{"TETRIS", true},
		{"TeTrIs\n", true},
		{"tetris game", false},
		{"てとりす", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, play.IsTrigger(tt.query))
		})
	}
}

func TestTrigger(t *testing.T) {
	launches := 0
	trigger := play.NewTrigger(func() { launches++ })

	assert.ErrorIs(t, trigger.Submit("company name"), play.ErrNotTrigger)
	assert.False(t, trigger.Started())

	require.NoError(t, trigger.Submit("Tetris"))
	assert.True(t, trigger.Started())
	assert.Equal(t, 1, launches)

	assert.ErrorIs(t, trigger.Submit("テトリス"), play.ErrAlreadyStarted)
	assert.ErrorIs(t, trigger.Submit("other"), play.ErrNotTrigger)
	assert.Equal(t, 1, launches)
}

func TestActionForKey(t *testing.T) {
	for key, want := range map[string]tetris.Action{
		"ArrowLeft":  tetris.ActionMoveLeft,
		"ArrowRight": tetris.ActionMoveRight,
		"ArrowDown":  tetris.ActionSoftDrop,
		"ArrowUp":    tetris.ActionRotate,
		"c":          tetris.ActionHold,
		"C":          tetris.ActionHold,
	} {
		got, ok := play.ActionForKey(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
	_, ok := play.ActionForKey("Space")
	assert.False(t, ok)
}

func TestInputQueue(t *testing.T) {
	var q play.InputQueue
	q.Push(tetris.ActionMoveLeft)
	q.Push(tetris.ActionRotate)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []tetris.Action{tetris.ActionMoveLeft, tetris.ActionRotate}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func newGame(t *testing.T, cfg play.Config) *play.Game {
	t.Helper()
	cfg.Session = tetris.DefaultOptions()
	cfg.Session.Rand = rand.New(rand.NewPCG(5, 8))
	return play.NewGame(cfg)
}

func TestGameInput(t *testing.T) {
	g := newGame(t, play.Config{})
	start, ok := g.Session.Current()
	require.True(t, ok)

	assert.True(t, g.Press("ArrowLeft"))
	assert.True(t, g.Press("ArrowDown"))
	assert.False(t, g.Press("Enter"))

	p, _ := g.Session.Current()
	assert.Equal(t, start, p, "input waits for the next frame")

	assert.True(t, g.Frame(0))
	p, _ = g.Session.Current()
	assert.Equal(t, start.Col-1, p.Col)
	assert.Equal(t, start.Row+1, p.Row)

	applied, rejected := g.InputCounts()
	assert.Equal(t, 2, applied)
	assert.Equal(t, 0, rejected)
	assert.Equal(t, "Hold: none (C to hold)", g.Status.Hold)
}

func TestGameIDs(t *testing.T) {
	a := newGame(t, play.Config{})
	b := newGame(t, play.Config{})
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGameGravity(t *testing.T) {
	g := newGame(t, play.Config{})
	start, _ := g.Session.Current()

	g.Frame(0)
	g.Frame(250 * time.Millisecond)
	g.Frame(499 * time.Millisecond)
	p, _ := g.Session.Current()
	assert.Equal(t, start.Row, p.Row)

	g.Frame(501 * time.Millisecond)
	p, _ = g.Session.Current()
	assert.Equal(t, start.Row+1, p.Row)
}

func TestGameOverHaltsLoop(t *testing.T) {
	var logs bytes.Buffer
	notified := 0
	var order []string
	g := newGame(t, play.Config{
		OnGameOver: func() { notified++; order = append(order, "notify") },
		After:      []frame.System{&markSystem{log: &order}},
		Logger:     log.New(&logs, "", 0),
	})

	for c := 0; c < 9; c++ {
		g.Session.Board().Set(2, c, 1)
	}

	now := time.Duration(0)
	frames := 0
	for g.Frame(now) {
		now += 100 * time.Millisecond
		frames++
		require.Less(t, frames, 1000, "game never ended")
	}

	assert.True(t, g.Over())
	assert.Equal(t, 1, notified)
	assert.Equal(t, "GAME OVER", g.Status.Status)
	assert.Equal(t, "notify", order[len(order)-1], "notification runs after the final frame")
	assert.Contains(t, logs.String(), "game over")

	assert.False(t, g.Frame(now+time.Second))
	assert.False(t, g.Press("ArrowLeft"))
	assert.Equal(t, 1, notified)
}

func TestGameOverFromHold(t *testing.T) {
	notified := 0
	g := newGame(t, play.Config{OnGameOver: func() { notified++ }})

	for range 5 {
		require.True(t, g.Press("ArrowDown"))
	}
	require.True(t, g.Frame(0))
	p, _ := g.Session.Current()
	require.Equal(t, 5, p.Row)

	for c := 3; c <= 6; c++ {
		g.Session.Board().Set(0, c, 1)
	}
	require.True(t, g.Press("c"))

	assert.False(t, g.Frame(10*time.Millisecond), "a hold that tops out ends the loop")
	assert.True(t, g.Over())
	assert.Equal(t, 1, notified)
	assert.Equal(t, "GAME OVER", g.Status.Status)
	assert.EqualValues(t, 2, g.Scheduler.GetStats().Frames)

	assert.False(t, g.Frame(time.Second))
	assert.Equal(t, 1, notified)
}

func TestGameRun(t *testing.T) {
	var logs bytes.Buffer
	g := newGame(t, play.Config{Logger: log.New(&logs, "", 0)})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	g.Run(ctx, time.Millisecond)
	assert.False(t, g.Over())
	assert.Contains(t, logs.String(), "game "+g.ID.String()+" created")
	assert.Contains(t, logs.String(), "loop stopped")
}

type markSystem struct {
	log *[]string
}

func (s *markSystem) Execute(f *frame.UpdateFrame) {
	*s.log = append(*s.log, "frame")
}
