package main

import (
	"math/rand/v2"

	"github.com/plus3/searchtris/frame"
	"github.com/plus3/searchtris/play"
	"github.com/plus3/searchtris/tetris"
)

var randomActions = []tetris.Action{
	tetris.ActionMoveLeft,
	tetris.ActionMoveRight,
	tetris.ActionSoftDrop,
	tetris.ActionRotate,
	tetris.ActionHold,
}

// RandomInputSystem queues a random action on a fraction of frames, standing
// in for a player.
type RandomInputSystem struct {
	Queue *play.InputQueue
	Rand  *rand.Rand
	Rate  float64

	Pushed int
}

func (s *RandomInputSystem) Execute(f *frame.UpdateFrame) {
	if s.Rand.Float64() >= s.Rate {
		return
	}
	s.Queue.Push(randomActions[s.Rand.IntN(len(randomActions))])
	s.Pushed++
}
